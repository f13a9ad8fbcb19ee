package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/saghm/pallang/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	RunE: func(c *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL() error {
	r := repl.New(banner, version, prompt)
	return r.Start(os.Stdout)
}
