package fixuclient

import (
	"context"
	"sync"
)

type FetchState string

const (
	StateIdle    FetchState = "idle"
	StateLoading FetchState = "loading"
	StateSuccess FetchState = "success"
	StateFailed  FetchState = "failed"
)

// Fetch tracks one asynchronous load the way a screen does: idle until
// started, loading while in flight, then success with a payload or
// failed with the error. Bind the context to the screen's lifetime;
// once it is canceled the outcome is discarded, so a fetch can never
// mutate state for a screen that is already gone.
type Fetch[T any] struct {
	mu     sync.Mutex
	state  FetchState
	result T
	err    error
}

func NewFetch[T any]() *Fetch[T] {
	return &Fetch[T]{state: StateIdle}
}

// Run executes fn, moving through Loading into Success or Failed. It
// blocks; start it on a goroutine when the caller must not wait. If ctx
// is canceled before fn returns, the fetch keeps its Loading state and
// the result is dropped.
func (f *Fetch[T]) Run(ctx context.Context, fn func(context.Context) (T, error)) {
	f.mu.Lock()
	f.state = StateLoading
	f.err = nil
	f.mu.Unlock()

	v, err := fn(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		f.state = StateFailed
		f.err = err
		return
	}
	f.state = StateSuccess
	f.result = v
}

func (f *Fetch[T]) State() FetchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Result returns the payload and whether the fetch has succeeded.
func (f *Fetch[T]) Result() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.state == StateSuccess
}

// Err returns the failure, nil unless the fetch is in StateFailed.
func (f *Fetch[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateFailed {
		return nil
	}
	return f.err
}
