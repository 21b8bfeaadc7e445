package cmd

import (
	"github.com/spf13/cobra"
)

var RunCmd = &cobra.Command{
	Use:          "run [./folder|file.inet]",
	Short:        "Run a module, printing the output of its show and run statements",
	RunE:         runRun,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func init() {
	addCommonFlags(RunCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	at, err := resolveTarget(args[0])
	if err != nil {
		return err
	}
	loaded, err := loadSettings(cmd, at)
	if err != nil {
		return err
	}
	module, err := loadModule(at, loaded, cmd, true)
	if err != nil {
		return err
	}
	return reportErrors(cmd, module)
}
