// Package netsrv is the TCP front end: each connection sends one whole
// program, gets it run once against a fresh Evaluator, and is closed.
// Binding happens once, the way go-mix's main.go startServer/handleClient
// accept loop does it, rather than original_source's listener.rs rebinding
// per connection — a per-connection read/run failure is logged and the
// listener keeps serving.
package netsrv

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/saghm/pallang/eval"
	"github.com/saghm/pallang/parser"
)

// Server accepts connections on Addr and runs one program per connection.
type Server struct {
	Addr   string
	Logger *log.Logger
}

// New builds a Server bound to addr (e.g. "localhost:7777"), logging to
// the standard logger unless overridden.
func New(addr string) *Server {
	return &Server{Addr: addr, Logger: log.Default()}
}

// ListenAndServe binds Addr and then accepts connections forever; it
// returns only if binding fails (e.g. the port is already taken). Accept
// errors are logged and the loop keeps going.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("netsrv: listen on %s: %w", s.Addr, err)
	}
	defer ln.Close()
	s.Logger.Printf("listening on %s", s.Addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.Logger.Printf("accept error: %v", err)
			continue
		}
		go s.handle(conn)
	}
}

// handle reads one connection's entire body as a program, runs it, writes
// any output and a trailing error line if it failed, then closes.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	remote := conn.RemoteAddr()
	s.Logger.Printf("connection from %s", remote)
	defer s.Logger.Printf("connection from %s closed", remote)

	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(conn, "[runtime error] %v\n", rec)
			s.Logger.Printf("connection from %s panicked: %v", remote, rec)
		}
	}()

	src, err := io.ReadAll(bufio.NewReader(conn))
	if err != nil {
		s.Logger.Printf("read error from %s: %v", remote, err)
		return
	}

	p := parser.NewParser(string(src))
	stmts := p.ParseProgram()
	if p.HasErrors() {
		fmt.Fprintln(conn, "Sorry! That's an invalid statement")
		for _, msg := range p.Errors() {
			fmt.Fprintf(conn, "  %s\n", msg)
		}
		return
	}

	ev := eval.New()
	ev.Writer = conn
	if _, err := ev.Run(stmts); err != nil {
		fmt.Fprintf(conn, "[error] %s\n", err)
		s.Logger.Printf("eval error from %s: %v", remote, err)
	}
}
