package usecase

import (
	"sync"
)

// ConfirmAllWorkflow serializes the order-wide confirm action. Only one
// confirm call may be in flight at a time; re-entry while confirming is a
// no-op. The workflow always returns to idle when the call settles.
type ConfirmAllWorkflow struct {
	mu         sync.Mutex
	confirming bool
}

func NewConfirmAllWorkflow() *ConfirmAllWorkflow {
	return &ConfirmAllWorkflow{}
}

// Run executes fn unless a confirm is already in flight. The first return
// value reports whether fn ran.
func (w *ConfirmAllWorkflow) Run(fn func() error) (bool, error) {
	w.mu.Lock()
	if w.confirming {
		w.mu.Unlock()
		return false, nil
	}
	w.confirming = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.confirming = false
		w.mu.Unlock()
	}()

	return true, fn()
}

// Confirming reports whether a confirm call is currently in flight.
func (w *ConfirmAllWorkflow) Confirming() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.confirming
}
