//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/inet/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "inet [subcommand]",
	Short:        "inet\n an interaction net language, checked and run",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.RunCmd)
}
