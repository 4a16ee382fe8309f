package core

import (
	"os"
	"testing"
	"time"
)

type fakeScreen struct {
	finis int
}

func (f *fakeScreen) Fini() { f.finis++ }

func captureExit(t *testing.T) <-chan int {
	t.Helper()
	codes := make(chan int, 2)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		exit = os.Exit
		RegisterFinisher(nil)
	})
	return codes
}

// TestHandleCrashRestoresScreen verifies the registered finisher runs once before exit
func TestHandleCrashRestoresScreen(t *testing.T) {
	codes := captureExit(t)
	screen := &fakeScreen{}
	RegisterFinisher(screen)

	HandleCrash("boom")

	if screen.finis != 1 {
		t.Errorf("Expected screen finalized once, got %d", screen.finis)
	}
	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}

	// A second crash must not finalize the screen again
	HandleCrash("again")
	<-codes
	if screen.finis != 1 {
		t.Errorf("Expected finisher cleared after crash, got %d calls", screen.finis)
	}
}

// TestHandleCrashNil verifies a nil recovery value is ignored
func TestHandleCrashNil(t *testing.T) {
	codes := captureExit(t)
	HandleCrash(nil)

	select {
	case code := <-codes:
		t.Errorf("Expected no exit, got code %d", code)
	default:
	}
}

// TestGoRecovers verifies a panicking goroutine reaches the crash handler
func TestGoRecovers(t *testing.T) {
	codes := captureExit(t)

	Go(func() { panic("worker failed") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the crash handler to run")
	}
}
