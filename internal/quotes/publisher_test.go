package quotes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChannelPublisher_DeliversToChannel(t *testing.T) {
	ch := make(chan CreatedEvent, 2)
	p := NewChannelPublisher(ch)

	p.Publish(CreatedEvent{Request: QuoteRequest{ID: "q1"}})

	select {
	case ev := <-ch:
		require.Equal(t, "q1", ev.Request.ID)
	default:
		t.Fatal("expected event on channel")
	}
}

func TestChannelPublisher_DropsWhenFullWithoutBlocking(t *testing.T) {
	ch := make(chan CreatedEvent, 1)
	p := NewChannelPublisher(ch)

	p.Publish(CreatedEvent{Request: QuoteRequest{ID: "q1"}})

	// buffer is full; the next publish must return instead of blocking
	done := make(chan struct{})
	go func() {
		p.Publish(CreatedEvent{Request: QuoteRequest{ID: "q2"}})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full channel")
	}

	// only the first event is queued; the overflow was dropped
	ev := <-ch
	require.Equal(t, "q1", ev.Request.ID)
	select {
	case ev := <-ch:
		t.Fatalf("unexpected queued event %q", ev.Request.ID)
	default:
	}
}
