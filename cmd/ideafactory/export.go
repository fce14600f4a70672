package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/exporter"
)

var (
	exportType   string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export batch and story metadata",
	Long: `Export batch and story metadata to JSON, YAML, CSV, or HTML.

Only front-matter metadata is exported; markdown bodies stay in the
workspace. Output goes to stdout unless --out names a file.

Examples:
  ideafactory export --format json
  ideafactory export --type stories --format csv --out stories.csv
  ideafactory export --type all --format html --out catalog.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := exporter.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		kind, err := exporter.ParseKind(exportType)
		if err != nil {
			return err
		}

		lib, _, err := getLibrary()
		if err != nil {
			return err
		}
		batches, err := lib.Batches()
		if err != nil {
			return err
		}
		stories, err := lib.Stories()
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		if err := exporter.Export(out, format, kind, batches, stories); err != nil {
			return err
		}
		if exportOut != "" {
			fmt.Fprintf(os.Stderr, "Exported to %s\n", exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportType, "type", "all", "what to export: batches, stories, or all")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json, yaml, csv, or html")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}
