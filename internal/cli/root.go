// Package cli defines the courtrecords command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// New builds the root command with its subcommands attached.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:   "courtrecords",
		Short: "Parse Alabama SJIS case detail documents into tables",
		Long: `courtrecords archives raw case detail text and parses it into
cases, charges, and fees tables for spreadsheet or database output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(newArchiveCmd())
	root.AddCommand(newTableCmd())
	return root
}
