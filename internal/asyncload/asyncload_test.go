package asyncload

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoadDeliversValue(t *testing.T) {
	ch, err := Load(context.Background(), func() (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	select {
	case r := <-ch:
		if r.Err != nil {
			t.Fatalf("unexpected result error: %v", r.Err)
		}
		if r.Value != 42 {
			t.Errorf("got %d, want 42", r.Value)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result")
	}
}

func TestLoadDeliversError(t *testing.T) {
	wantErr := errors.New("boom")
	ch, err := Load(context.Background(), func() (int, error) {
		return 0, wantErr
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	r := <-ch
	if !errors.Is(r.Err, wantErr) {
		t.Errorf("got %v, want %v", r.Err, wantErr)
	}
}

func TestLoadRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, func() (int, error) { return 0, nil })
	if err == nil {
		t.Fatal("expected error for already-cancelled context")
	}
}
