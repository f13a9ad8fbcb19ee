package eval

import (
	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/state"
	"github.com/saghm/pallang/stream"
)

// RunStreamed runs a program on a new goroutine against a fresh Stream,
// returning the Stream immediately so a host can drive it with GetEvent
// and WriteInput while the program runs concurrently. The Stream always
// sees a terminal Finished event, even if the program errors out; a
// top-level error is reported as one last Output line before it.
func RunStreamed(stmts []ast.Statement) *stream.Stream {
	s := stream.New()
	ev := &Evaluator{State: state.New(), Stream: s}

	go func() {
		defer s.Finish()
		if _, err := ev.Run(stmts); err != nil {
			s.WriteOutput(err.Error() + "\n")
		}
	}()

	return s
}
