package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/home"
	"github.com/aiwynns/ideafactory/internal/indexer"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the workspace and keep INDEX.md current",
	Long: `Watch the workspace for markdown changes and rebuild INDEX.md when
batch or story files change.

Rapid bursts of changes are coalesced; the index is rebuilt once per
quiet period. Stop with Ctrl+C.

Examples:
  ideafactory watch
  ideafactory watch --debounce 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := getLogger()

		lib, h, err := getLibrary()
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer watcher.Close()

		for _, loc := range home.Locations {
			if err := watcher.Add(h.LocationPath(loc)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", h.LocationPath(loc), err)
			}
		}
		if err := watcher.Add(h.StoriesPath()); err != nil {
			return fmt.Errorf("failed to watch %s: %w", h.StoriesPath(), err)
		}

		rebuild := func() {
			batches, err := lib.Batches()
			if err != nil {
				logger.Error("failed to load batches", "error", err)
				return
			}
			stories, err := lib.Stories()
			if err != nil {
				logger.Error("failed to load stories", "error", err)
				return
			}
			if err := indexer.New(h).Update(batches, stories); err != nil {
				logger.Error("failed to update index", "error", err)
				return
			}
			logger.Info("index updated", "batches", len(batches), "stories", len(stories))
		}

		logger.Info("watching workspace", "path", h.Path())

		// Stopped timer used as a debounce; reset on every relevant event.
		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-timer.C:
				rebuild()
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !strings.HasSuffix(event.Name, ".md") {
					continue
				}
				// Index rewrites must not retrigger a rebuild.
				if strings.HasSuffix(event.Name, home.IndexFileName) {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				timer.Reset(watchDebounce)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watch error", "error", err)
			}
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "quiet period before rebuilding the index")

	rootCmd.AddCommand(watchCmd)
}
