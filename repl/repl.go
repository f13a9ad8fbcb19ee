// Package repl implements the interactive Read-Eval-Print Loop, built on
// chzyer/readline the way go-mix's repl/repl.go is: a single Evaluator
// lives for the whole session so variables and functions defined on one
// line stay visible on the next, with readline supplying history and line
// editing and fatih/color supplying the prompt's visual feedback.
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/saghm/pallang/eval"
	"github.com/saghm/pallang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the prompt
// string readline shows before each line.
type Repl struct {
	Banner      string
	Version     string
	Prompt      string
	HistoryFile string
}

// New builds a Repl persisting history to `.history` in the working
// directory, created on first use if missing.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt, HistoryFile: ".history"}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, r.Banner)
	blueColor.Fprintln(w, line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintln(w, line)
	cyanColor.Fprintln(w, "Type a statement and press enter, or '.exit' to quit.")
	cyanColor.Fprintln(w, "Use up/down arrows to navigate command history.")
	blueColor.Fprintln(w, line)
}

// Start runs the loop until EOF, an interrupt, or '.exit'. The history
// file is created up front if missing so SaveHistory never fails on a
// fresh machine, matching the create-if-missing semantics a persisted
// session history needs.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	if f, err := os.OpenFile(r.HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		f.Close()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     r.HistoryFile,
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := eval.New()
	ev.Writer = w

	for {
		line, err := rl.Readline()
		if err != nil {
			yellowColor.Fprintln(w, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			yellowColor.Fprintln(w, "Good bye!")
			return nil
		}

		rl.SaveHistory(line)
		r.evalLine(w, ev, line)
	}
}

// evalLine parses and runs one line, recovering from panics (e.g. integer
// division by zero) the way the file-execution front end does, so a
// single bad line never kills the session.
func (r *Repl) evalLine(w io.Writer, ev *eval.Evaluator, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[runtime error] %v\n", rec)
		}
	}()

	p := parser.NewParser(line)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		redColor.Fprintln(w, "Sorry! That's an invalid statement")
		for _, msg := range p.Errors() {
			redColor.Fprintf(w, "  %s\n", msg)
		}
		return
	}

	val, err := ev.Run(stmts)
	if err != nil {
		redColor.Fprintf(w, "[error] %s\n", err)
		return
	}
	if val != nil {
		yellowColor.Fprintln(w, val.Display())
	}
}
