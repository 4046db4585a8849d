package usecase

import (
	"errors"
	"sync"
	"testing"
)

func TestConfirmAllWorkflowRunsOnce(t *testing.T) {
	workflow := NewConfirmAllWorkflow()

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workflow.Run(func() error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	if !workflow.Confirming() {
		t.Error("Confirming() = false while fn in flight")
	}

	ran, err := workflow.Run(func() error {
		t.Error("re-entrant fn must not run")
		return nil
	})
	if ran || err != nil {
		t.Errorf("re-entrant Run = (%v, %v), want (false, nil)", ran, err)
	}

	close(release)
	wg.Wait()

	if workflow.Confirming() {
		t.Error("Confirming() = true after settle")
	}
}

func TestConfirmAllWorkflowIdleAfterFailure(t *testing.T) {
	workflow := NewConfirmAllWorkflow()
	wantErr := errors.New("engine rejected")

	ran, err := workflow.Run(func() error { return wantErr })
	if !ran || !errors.Is(err, wantErr) {
		t.Fatalf("Run = (%v, %v), want (true, %v)", ran, err, wantErr)
	}

	// A failed confirm leaves the workflow retryable.
	ran, err = workflow.Run(func() error { return nil })
	if !ran || err != nil {
		t.Errorf("Run after failure = (%v, %v), want (true, nil)", ran, err)
	}
}
