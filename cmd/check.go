package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cottand/inet/inet"
	"github.com/cottand/inet/internal/log"
	"github.com/cottand/inet/internal/settings"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchLogger = log.DefaultLogger.With("section", "watch")

var CheckCmd = &cobra.Command{
	Use:          "check [./folder|file.inet]",
	Short:        "Check a module without printing its output",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var watch *bool

func init() {
	addCommonFlags(CheckCmd)
	watch = CheckCmd.Flags().BoolP("watch", "w", false, "check again every time the module changes, until interrupted")
}

func runCheck(cmd *cobra.Command, args []string) error {
	at, err := resolveTarget(args[0])
	if err != nil {
		return err
	}
	loaded, err := loadSettings(cmd, at)
	if err != nil {
		return err
	}
	if !*watch {
		return checkOnce(cmd, at, loaded)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchAndCheck(ctx, cmd, at, loaded)
}

func checkOnce(cmd *cobra.Command, at target, loaded settings.Settings) error {
	module, err := loadModule(at, loaded, cmd, false)
	if err != nil {
		return err
	}
	if err := reportErrors(cmd, module); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", module.Name())
	return nil
}

const watchDebounce = 500 * time.Millisecond

// watchAndCheck checks the module once, then again after every burst of
// changes to it, until ctx is done.
func watchAndCheck(ctx context.Context, cmd *cobra.Command, at target, loaded settings.Settings) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// editors often replace files rather than write them, so the folder is watched
	if err := watcher.Add(at.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", at.dir, err)
	}
	watchLogger.Info("watching", "dir", at.dir, "file", at.file)

	check := func() {
		if err := checkOnce(cmd, at, loaded); err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
	check()

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isModuleEvent(at, event) {
				continue
			}
			watchLogger.Debug("module changed", "event", event)
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLogger.Warn("watcher error", "error", err)
		case <-debounce.C:
			check()
		}
	}
}

func isModuleEvent(at target, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if at.file != "" {
		return name == at.file
	}
	return filepath.Ext(name) == inet.FileExtension
}
