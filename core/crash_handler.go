// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"
)

// Finalizer restores the terminal, satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashLog      = zerolog.Nop()
	crashOut      io.Writer = os.Stderr
	crashExit               = os.Exit
)

// RegisterTerminal sets the screen to restore before a crash report
// Passing nil unregisters it, done on normal shutdown after Fini
func RegisterTerminal(t Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// RegisterLogger sets the logger that records the crash
func RegisterLogger(log zerolog.Logger) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashLog = log
}

// HandleCrash resets the terminal, prints the panic and stack trace, and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	log := crashLog
	out := crashOut
	exit := crashExit
	crashMu.Unlock()

	// Restore terminal to a sane state first so the trace is readable
	if term != nil {
		term.Fini()
	}

	stack := debug.Stack()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(out, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", stack)

	exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
