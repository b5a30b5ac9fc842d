package scan

import (
	"iter"
	"path/filepath"
	"strings"
)

// Extension returns the text after the last "." in the base name of path.
// Names without a dot, and names whose only dot is the leading one
// (".gitignore"), have no extension.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// MatchExtension reports whether path has exactly the extension ext.
// The comparison is case-sensitive and ext must not carry a leading dot.
func MatchExtension(path, ext string) bool {
	got, ok := Extension(path)
	return ok && got == ext
}

// Filter yields only the entries of seq whose extension is ext.
func Filter(seq iter.Seq[Entry], ext string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for entry := range seq {
			if !MatchExtension(entry.Path, ext) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}
