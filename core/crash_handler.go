// Package core holds process-wide crash handling shared by the binaries.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores a resource that must not be left dirty on crash, a tcell screen in practice
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashFinisher Finisher

	// exit is replaced in tests
	exit = os.Exit
)

// RegisterFinisher sets the resource HandleCrash restores before printing the trace
// Passing nil clears it
func RegisterFinisher(f Finisher) {
	crashMu.Lock()
	crashFinisher = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f := crashFinisher
	crashFinisher = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing to it
	if f != nil {
		f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
