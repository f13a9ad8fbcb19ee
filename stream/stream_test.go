package stream_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saghm/pallang/stream"
)

func TestStream_OutputThenFinished(t *testing.T) {
	s := stream.New()
	s.WriteOutput("hello")
	s.Finish()

	ev := s.GetEvent()
	assert.Equal(t, stream.Output, ev.Kind)
	assert.Equal(t, "hello", ev.Line)

	ev = s.GetEvent()
	assert.Equal(t, stream.Finished, ev.Kind)
}

func TestStream_ReadInputBlocksUntilWriteInput(t *testing.T) {
	s := stream.New()
	done := make(chan string, 1)

	go func() {
		done <- s.ReadInput()
	}()

	// GetEvent blocks until ReadInput posts its NeedsInput event.
	ev := s.GetEvent()
	require.Equal(t, stream.NeedsInput, ev.Kind)

	s.WriteInput("a line")

	select {
	case line := <-done:
		assert.Equal(t, "a line", line)
	case <-time.After(time.Second):
		t.Fatal("ReadInput never returned after WriteInput")
	}
}

func TestStream_WriteInputWithoutPendingReadIsNoop(t *testing.T) {
	s := stream.New()
	s.WriteInput("ignored")
	s.WriteOutput("still works")

	ev := s.GetEvent()
	assert.Equal(t, stream.Output, ev.Kind)
	assert.Equal(t, "still works", ev.Line)
}
