package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openalabama/courtrecords/internal/repository"
)

func newArchiveCmd() *cobra.Command {
	var (
		output string
		dbDSN  string
		dedupe bool
	)

	cmd := &cobra.Command{
		Use:   "archive <directory>",
		Short: "Collect case text files into a reusable archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := repository.FromDirectory(args[0])
			if err != nil {
				return err
			}
			slog.Info("collected case texts", "count", len(a.Cases))

			if dedupe {
				if removed := a.Dedupe(); removed > 0 {
					slog.Info("removed duplicate texts", "count", removed)
				}
			}

			switch {
			case dbDSN != "":
				store, err := openStore(dbDSN)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.SaveArchive(cmd.Context(), a); err != nil {
					return err
				}
			case output != "":
				if err := a.WriteJSON(output); err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --output or --db is required")
			}

			slog.Info("archive written", "cases", len(a.Cases))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "JSON archive path")
	cmd.Flags().StringVar(&dbDSN, "db", "", "database target (sqlite path or postgres:// DSN)")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "drop duplicate case texts")
	return cmd
}
