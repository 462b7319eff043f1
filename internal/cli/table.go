package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openalabama/courtrecords/internal/export"
	"github.com/openalabama/courtrecords/internal/pipeline"
	"github.com/openalabama/courtrecords/internal/repository"
)

func newTableCmd() *cobra.Command {
	var (
		output  string
		dbDSN   string
		dedupe  bool
		maxRows int
		variant string
	)

	cmd := &cobra.Command{
		Use:   "table <archive.json|directory>",
		Short: "Parse an archive into cases, charges, and fees tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadArchive(args[0])
			if err != nil {
				return err
			}

			proc := pipeline.New(pipeline.Config{
				Dedupe:  dedupe,
				MaxRows: maxRows,
			}, slog.Default())
			tables, err := proc.Run(cmd.Context(), a.Cases)
			if err != nil {
				return err
			}

			if dbDSN != "" {
				store, err := openStore(dbDSN)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.SaveTables(cmd.Context(),
					tables.Cases, tables.Charges, tables.Fees); err != nil {
					return err
				}
				slog.Info("tables stored", "target", dbDSN)
				return nil
			}

			if output == "" {
				return fmt.Errorf("either --output or --db is required")
			}
			return writeTables(output, variant, tables)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (.xlsx, .csv, or .json)")
	cmd.Flags().StringVar(&dbDSN, "db", "", "database target (sqlite path or postgres:// DSN)")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "drop duplicate case texts before parsing")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "cap on cases to parse (0 = all)")
	cmd.Flags().StringVar(&variant, "charges", "all",
		"charge table variant: all, filing, or disposition")
	return cmd
}

func loadArchive(source string) (*repository.Archive, error) {
	if strings.HasSuffix(source, ".json") {
		return repository.ReadJSON(source)
	}
	return repository.FromDirectory(source)
}

func chargeVariant(name string) (export.ChargeVariant, error) {
	switch name {
	case "all", "":
		return export.AllCharges, nil
	case "filing":
		return export.FilingCharges, nil
	case "disposition":
		return export.DispositionCharges, nil
	default:
		return 0, fmt.Errorf("unknown charge variant %q", name)
	}
}

func writeTables(output, variant string, t pipeline.Tables) error {
	v, err := chargeVariant(variant)
	if err != nil {
		return err
	}
	et := export.Tables{Cases: t.Cases, Charges: t.Charges, Fees: t.Fees}

	switch ext := filepath.Ext(output); ext {
	case ".xlsx":
		if v != export.AllCharges {
			return export.WriteChargesXLSX(output, t.Charges, v)
		}
		return export.WriteXLSX(output, et)
	case ".csv":
		if v != export.AllCharges {
			return export.WriteChargesCSV(output, t.Charges, v)
		}
		base := strings.TrimSuffix(output, ext)
		if err := export.WriteCasesCSV(base+".cases.csv", t.Cases); err != nil {
			return err
		}
		if err := export.WriteChargesCSV(base+".charges.csv", t.Charges, v); err != nil {
			return err
		}
		return export.WriteFeesCSV(base+".fees.csv", t.Fees)
	case ".json":
		return export.WriteJSON(output, et)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func openStore(dsn string) (*repository.Store, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return repository.OpenPostgres(dsn)
	}
	return repository.OpenSQLite(dsn)
}
