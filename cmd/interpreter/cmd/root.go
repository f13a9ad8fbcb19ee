// Package cmd wires the interpreter's cobra command tree: run, repl
// (also the default when no subcommand is given) and listen.
package cmd

import (
	"github.com/spf13/cobra"
)

const (
	version = "v0.1.0"
	banner  = `  ____        _ _
 |  _ \ __ _ | | | __ _ _ __   __ _
 | |_) / _' || | |/ _' | '_ \ / _' |
 |  __/ (_| || | | (_| | | | | (_| |
 |_|   \__,_||_|_|\__,_|_| |_|\__, |
                               |___/`
	prompt = "pallang >>> "
)

var rootCmd = &cobra.Command{
	Use:     "interpreter",
	Short:   "A tree-walking interpreter for a small statically-named, dynamically-typed language",
	Version: version,
	RunE: func(c *cobra.Command, args []string) error {
		return runREPL()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
