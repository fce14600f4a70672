package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate front matter across the workspace",
	Long: `Validate the YAML front matter of every batch and story file
against the document schemas.

Exits non-zero when any file fails validation.

Examples:
  ideafactory validate
  ideafactory validate -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := getHome()
		if err != nil {
			return err
		}

		v, err := schema.NewValidator()
		if err != nil {
			return err
		}
		issues, err := v.CheckWorkspace(h)
		if err != nil {
			return err
		}

		if api.IsStructuredOutput() {
			if err := api.Output(issues); err != nil {
				return err
			}
		} else if len(issues) == 0 {
			fmt.Println("All files valid.")
		} else {
			for _, issue := range issues {
				fmt.Printf("%s: %s\n", issue.File, issue.Message)
			}
		}

		if len(issues) > 0 {
			return fmt.Errorf("%d file(s) failed validation", len(issues))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
