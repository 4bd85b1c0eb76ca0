package kafka

import (
	"context"
	"errors"
	"testing"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func TestJSONHandlerMarksMalformedMessages(t *testing.T) {
	called := false
	h := JSONHandler[note](nil, func(ctx context.Context, n *note) error {
		called = true
		return nil
	})

	mark, err := h.HandleMessage(context.Background(), []byte("{not json"))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !mark {
		t.Error("malformed messages should be marked and skipped")
	}
	if called {
		t.Error("process must not run for malformed messages")
	}
}

func TestJSONHandlerMarksRejectedMessages(t *testing.T) {
	called := false
	h := JSONHandler[note](
		func(n *note) bool { return n.ID != "" },
		func(ctx context.Context, n *note) error {
			called = true
			return nil
		},
	)

	mark, err := h.HandleMessage(context.Background(), []byte(`{"body":"no id"}`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !mark {
		t.Error("rejected messages should be marked and skipped")
	}
	if called {
		t.Error("process must not run for rejected messages")
	}
}

func TestJSONHandlerHoldsOffsetOnProcessError(t *testing.T) {
	h := JSONHandler[note](nil, func(ctx context.Context, n *note) error {
		return errors.New("store down")
	})

	mark, err := h.HandleMessage(context.Background(), []byte(`{"id":"a"}`))
	if err == nil {
		t.Fatal("expected the processing error back")
	}
	if mark {
		t.Error("failed messages must stay unmarked for redelivery")
	}
}

func TestJSONHandlerProcessesValidMessages(t *testing.T) {
	var got *note
	h := JSONHandler[note](
		func(n *note) bool { return true },
		func(ctx context.Context, n *note) error {
			got = n
			return nil
		},
	)

	mark, err := h.HandleMessage(context.Background(), []byte(`{"id":"a","body":"b"}`))
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !mark {
		t.Error("successful messages should be marked")
	}
	if got == nil || got.ID != "a" || got.Body != "b" {
		t.Errorf("decoded message = %+v", got)
	}
}
