package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cottand/inet/inet"
	"github.com/cottand/inet/internal/log"
	"github.com/cottand/inet/internal/settings"
	"github.com/spf13/cobra"
)

type readFileDirFS interface {
	fs.ReadFileFS
	fs.ReadDirFS
}

// target is a module file resolved from the command line.
type target struct {
	dir  string
	file string
}

func resolveTarget(arg string) (target, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return target{}, fmt.Errorf("could not get absolute path of target: %w", err)
	}
	stat, err := os.Stat(abs)
	if err != nil {
		return target{}, fmt.Errorf("could not stat target: %w", err)
	}
	if stat.IsDir() {
		return target{dir: abs}, nil
	}
	return target{dir: filepath.Dir(abs), file: filepath.Base(abs)}, nil
}

// loadSettings reads --config, or the settings file next to the target if there is one,
// and applies flags the user set on top.
func loadSettings(cmd *cobra.Command, at target) (settings.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	required := configPath != ""
	if !required {
		configPath = filepath.Join(at.dir, settings.FileName)
	}
	loaded, err := settings.Load(configPath, required)
	if err != nil {
		return settings.Settings{}, err
	}

	if cmd.Flags().Changed("max-steps") {
		loaded.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
	}
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-sections") {
		loaded.LogSections, _ = cmd.Flags().GetStringSlice("log-sections")
	}
	if err := loaded.Validate(); err != nil {
		return settings.Settings{}, err
	}

	log.SetLevel(loaded.SlogLevel())
	log.EnableSections(loaded.LogSections...)
	return loaded, nil
}

func loadModule(at target, loaded settings.Settings, cmd *cobra.Command, withOutput bool) (*inet.Module, error) {
	opts := inet.LoadSettings{
		File:     at.file,
		MaxSteps: loaded.MaxSteps,
	}
	if withOutput {
		opts.Output = cmd.OutOrStdout()
	}
	module, err := inet.LoadModule(os.DirFS(at.dir).(readFileDirFS), opts)
	if err != nil {
		return nil, fmt.Errorf("could not load module (this is a bug and not a module error): %w", err)
	}
	return module, nil
}

func reportErrors(cmd *cobra.Command, module *inet.Module) error {
	if !module.Errors().HasError() {
		return nil
	}
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), module.FormatErrors())
	return fmt.Errorf("%d errors found in %s", len(module.Errors().Errors()), module.Name())
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "settings file (default: "+settings.FileName+" next to the module, if present)")
	cmd.Flags().StringP("log-level", "l", "error", "log level: debug, info, warn or error")
	cmd.Flags().StringSlice("log-sections", nil, "sections that log below warn level, like compose or reduce")
	cmd.Flags().Int("max-steps", settings.DefaultMaxSteps, "maximum number of interactions of each reduction, 0 for unlimited")
}
