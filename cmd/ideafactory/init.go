package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/config"
	"github.com/aiwynns/ideafactory/internal/creator"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the workspace",
	Long: `Initialize the ideafactory workspace.

Creates the directory tree, writes the default markdown templates, and
writes a default config.yaml. Existing files are never overwritten, so
init is safe to re-run.

Examples:
  ideafactory init
  ideafactory init --workspace ~/writing/ideas`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := getHome()
		if err != nil {
			return err
		}

		if err := h.EnsureExists(); err != nil {
			return err
		}
		if err := creator.New(h).WriteDefaultTemplates(); err != nil {
			return err
		}
		if !h.ConfigExists() {
			if err := config.WriteDefault(h.ConfigPath()); err != nil {
				return err
			}
		}

		fmt.Printf("Workspace initialized at %s\n", h.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
