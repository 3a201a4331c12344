package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type mockTerminal struct {
	mu    sync.Mutex
	finis int
}

func (m *mockTerminal) Fini() {
	m.mu.Lock()
	m.finis++
	m.mu.Unlock()
}

func (m *mockTerminal) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finis
}

// captureCrash swaps the output and exit hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	crashMu.Lock()
	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(code int) { codes <- code }
	crashMu.Unlock()

	t.Cleanup(func() {
		crashMu.Lock()
		crashOut, crashExit = prevOut, prevExit
		crashTerminal = nil
		crashMu.Unlock()
	})
	return &buf, codes
}

func TestHandleCrash_Nil(t *testing.T) {
	_, codes := captureCrash(t)
	HandleCrash(nil)
	select {
	case <-codes:
		t.Error("nil panic value must not exit")
	default:
	}
}

func TestHandleCrash_RestoresTerminal(t *testing.T) {
	buf, codes := captureCrash(t)
	term := &mockTerminal{}
	RegisterTerminal(term)

	HandleCrash("boom")

	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if term.count() != 1 {
		t.Errorf("Fini called %d times, want 1", term.count())
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("report missing panic value: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace:") {
		t.Error("report missing stack trace")
	}
}

func TestGo_RecoversPanic(t *testing.T) {
	buf, codes := captureCrash(t)
	term := &mockTerminal{}
	RegisterTerminal(term)

	Go(func() { panic("worker failed") })

	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if term.count() != 1 {
		t.Errorf("Fini called %d times, want 1", term.count())
	}

	crashMu.Lock()
	out := buf.String()
	crashMu.Unlock()
	if !strings.Contains(out, "worker failed") {
		t.Errorf("report missing panic value: %q", out)
	}
}
