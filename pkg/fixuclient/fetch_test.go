package fixuclient

import (
	"context"
	"testing"
)

func TestFetchStates(t *testing.T) {
	f := NewFetch[[]HistoryRecord]()
	if f.State() != StateIdle {
		t.Fatalf("initial state = %v", f.State())
	}

	f.Run(context.Background(), func(context.Context) ([]HistoryRecord, error) {
		return []HistoryRecord{{ID: "h1"}}, nil
	})
	if f.State() != StateSuccess {
		t.Fatalf("state = %v, want success", f.State())
	}
	recs, ok := f.Result()
	if !ok || len(recs) != 1 {
		t.Fatalf("result = %v, %v", recs, ok)
	}
	if f.Err() != nil {
		t.Fatalf("Err = %v after success", f.Err())
	}
}

func TestFetchFailureCarriesError(t *testing.T) {
	f := NewFetch[*Quote]()
	apiErr := &APIError{Kind: KindServerError, Status: 500, Message: "boom"}
	f.Run(context.Background(), func(context.Context) (*Quote, error) {
		return nil, apiErr
	})
	if f.State() != StateFailed {
		t.Fatalf("state = %v, want failed", f.State())
	}
	if KindOf(f.Err()) != KindServerError {
		t.Fatalf("Err = %v", f.Err())
	}
	if _, ok := f.Result(); ok {
		t.Fatal("failed fetch must not expose a result")
	}
}

func TestFetchDiscardsResultAfterCancel(t *testing.T) {
	f := NewFetch[string]()
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		f.Run(ctx, func(c context.Context) (string, error) {
			close(started)
			<-c.Done() // in-flight when the screen goes away
			return "late result", nil
		})
		close(done)
	}()

	<-started
	if f.State() != StateLoading {
		t.Fatalf("state = %v while in flight", f.State())
	}
	cancel()
	<-done

	// outcome dropped: no success, no failure, no payload
	if f.State() != StateLoading {
		t.Fatalf("state after cancel = %v, want loading (discarded)", f.State())
	}
	if _, ok := f.Result(); ok {
		t.Fatal("canceled fetch leaked its result")
	}
	if f.Err() != nil {
		t.Fatalf("canceled fetch reported error %v", f.Err())
	}
}

func TestFetchCanRunAgainAfterFailure(t *testing.T) {
	f := NewFetch[int]()
	f.Run(context.Background(), func(context.Context) (int, error) {
		return 0, &APIError{Kind: KindNetworkFailure, Message: "offline"}
	})
	if f.State() != StateFailed {
		t.Fatalf("state = %v", f.State())
	}
	f.Run(context.Background(), func(context.Context) (int, error) { return 42, nil })
	if f.State() != StateSuccess {
		t.Fatalf("state = %v after retry", f.State())
	}
	if v, _ := f.Result(); v != 42 {
		t.Fatalf("result = %d", v)
	}
}
