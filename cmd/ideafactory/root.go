package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/config"
	"github.com/aiwynns/ideafactory/internal/home"
	"github.com/aiwynns/ideafactory/internal/library"
	"github.com/aiwynns/ideafactory/version"
)

var (
	cfgFile       string
	workspacePath string
	outputFormat  string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "ideafactory",
	Short: "Personal story idea CMS for markdown concept batches",
	Long: `Ideafactory manages a markdown workspace of story concept batches and
story development files.

Concept batches live under concepts/{generated,developing,favorites},
stories under stories/. Each file carries YAML front matter; batches hold
numbered "## Concept N: Title" sections.

Core features:
  - Substring and fuzzy search across concepts and stories
  - Cross-batch duplicate detection
  - Batch and story scaffolding from templates
  - INDEX.md catalog generation with manual-notes preservation`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.ideafactory/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&workspacePath, "workspace", "", "workspace directory (default: ~/.ideafactory)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml, or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// getConfig loads configuration using the global flags.
func getConfig() (*config.Config, error) {
	mgr, err := config.NewManager(cfgFile, workspacePath)
	if err != nil {
		return nil, err
	}
	return mgr.Get(), nil
}

// getHome resolves the workspace directory. The --workspace flag wins,
// then the config file, then ~/.ideafactory.
func getHome() (*home.Dir, error) {
	path := workspacePath
	if path == "" {
		if cfg, err := getConfig(); err == nil {
			path = cfg.Workspace
		}
	}
	return home.New(path)
}

// getLogger builds the slog logger for command runs. The --verbose flag
// wins over the configured level.
func getLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg, err := getConfig(); err == nil {
		switch cfg.Log.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// getLibrary builds the library over the resolved workspace.
func getLibrary() (*library.Library, *home.Dir, error) {
	h, err := getHome()
	if err != nil {
		return nil, nil, err
	}
	return library.New(h, getLogger()), h, nil
}
