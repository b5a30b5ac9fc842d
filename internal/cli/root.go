package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Copy flags
	flagSource      string
	flagDestination string
	flagExtension   string
	flagFlatten     bool

	// Presentation flags
	flagDryRun  bool
	jsonOutput  bool
	flagVerbose bool
	flagColor   = colorAuto

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for extcopy. It performs the copy itself.
var rootCmd = &cobra.Command{
	Use:     "extcopy -d <destination> -e <extension> [flags]",
	Version: "dev",
	Short:   "Copy every file with a given extension out of a directory tree",
	Long: `extcopy scans a source directory recursively and copies every file with the
given extension into a destination directory.

By default the directory structure below the source is preserved. With --flatten
every file lands directly in the destination under its base name; when two files
share a name, the first one found wins.

Existing files are never overwritten, so running extcopy again over the same
destination only copies what is missing. A missing destination directory is
created (one level only).

The resolved configuration is echoed before copying. With --json nothing is
printed until the run ends; stdout then holds a single JSON document carrying
the configuration and the summary, and diagnostics go to stderr.`,
	Example: `  extcopy -s ./photos -d ./raw -e .cr2
  extcopy -d ./docs -e md --flatten
  extcopy -d ./out -e txt --dry-run`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runCopy,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.HasExample() {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	hasCommands := false
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		if !hasCommands {
			help.WriteString(sectionTitleColor.Sprint("Commands:"))
			help.WriteString("\n")
			hasCommands = true
		}
		fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
	}
	if hasCommands {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if hasCommands {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.Root().Name())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	flags := rootCmd.Flags()
	flags.StringVarP(&flagSource, "source", "s", ".", "Source directory to scan")
	flags.StringVarP(&flagDestination, "destination", "d", "", "Destination directory (created if missing)")
	flags.StringVarP(&flagExtension, "extension", "e", "", "Extension to copy, with or without the leading dot (case-sensitive)")
	flags.BoolVarP(&flagFlatten, "flatten", "f", false, "Copy every file directly into the destination (ignore subdirectories)")
	flags.BoolVar(&flagDryRun, "dry-run", false, "Show what would be copied without copying")
	flags.BoolVar(&jsonOutput, "json", false, "Output the resolved configuration and run summary as one JSON document")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Log skipped directory entries and planning details")
	flags.Var(&flagColor, "color", "Color output: auto, always or never")

	_ = rootCmd.MarkFlagRequired("destination")
	_ = rootCmd.MarkFlagRequired("extension")
	_ = rootCmd.MarkFlagDirname("source")
	_ = rootCmd.MarkFlagDirname("destination")
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return colorModes, cobra.ShellCompDirectiveNoFileComp
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the extcopy version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
		Long: `Generate the autocompletion script for extcopy for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	rootCmd.AddCommand(completionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
