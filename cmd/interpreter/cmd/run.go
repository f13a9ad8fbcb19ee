package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/saghm/pallang/eval"
	"github.com/saghm/pallang/parser"
)

var evalStdin bool

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file, or from stdin with -e",
	Long: `Execute a program read from a file, or from stdin with -e.

Examples:
  interpreter run script.pl
  echo 'print_line 1 + 1;' | interpreter run -e`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		var src []byte
		var err error

		switch {
		case evalStdin:
			src, err = io.ReadAll(os.Stdin)
		case len(args) == 1:
			src, err = os.ReadFile(args[0])
		default:
			return errors.New("either provide a file path or use -e to read a program from stdin")
		}
		if err != nil {
			return fmt.Errorf("reading program: %w", err)
		}

		return runSource(string(src))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&evalStdin, "eval", "e", false, "read the whole program from stdin instead of a file")
}

func runSource(src string) (runErr error) {
	defer func() {
		if rec := recover(); rec != nil {
			runErr = fmt.Errorf("runtime error: %v", rec)
		}
	}()

	p := parser.NewParser(src)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		for _, msg := range p.Errors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return errors.New("Sorry! That's an invalid statement")
	}

	ev := eval.New()
	if _, err := ev.Run(stmts); err != nil {
		return err
	}
	return nil
}
