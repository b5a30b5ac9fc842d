// Package humanize formats raw sizes for display.
package humanize

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Bytes formats a byte count using the largest binary unit that keeps the
// value below 1024. Plain bytes are printed as an integer, every larger unit
// with a single decimal digit.
func Bytes(n uint64) string {
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", n, byteUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
}
