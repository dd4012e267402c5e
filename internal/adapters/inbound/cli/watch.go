package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/featlint/featlint/internal/adapters/outbound/config"
	"github.com/featlint/featlint/internal/adapters/outbound/markdown"
	"github.com/featlint/featlint/internal/adapters/outbound/scanner"
	"github.com/featlint/featlint/internal/application"
	"github.com/featlint/featlint/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const watchDebounce = 300 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "watch <feature>",
		Short: "Re-audit a feature whenever its files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feature := args[0]

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewAuditService(scanner.New(), config.New())
			cfg, err := svc.Config(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			featurePath := filepath.Join(absPath, cfg.FeaturesDir, feature)

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watch init failed: %w", err)
			}
			defer watcher.Close()

			if err := addWatchRecursive(watcher, featurePath); err != nil {
				return fmt.Errorf("watch failed: %w", err)
			}

			run := func() {
				report, err := svc.AuditFeature(absPath, feature)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "audit failed: %v\n", err)
					return
				}
				outPath, err := markdown.NewWriter().Write(absPath, report, cfg)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "writing report: %v\n", err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d findings  %s\n",
					time.Now().Format("15:04:05"), report.Result(), len(report.Findings), outPath)
			}

			run()
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes...\n", featurePath)

			var timer *time.Timer
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					logging.Debugw("fs event", "op", ev.Op.String(), "name", ev.Name)
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(watchDebounce, run)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
				}
			}
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root")

	return cmd
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
