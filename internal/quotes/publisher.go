package quotes

import (
	"github.com/nwpolishing/backend/pkg/logger"
	"github.com/nwpolishing/backend/pkg/metrics"
)

// ChannelPublisher pushes creation events onto a buffered channel consumed by
// the notification dispatcher. Publish never blocks: when the buffer is full
// the event is dropped and counted. Intake must not stall behind email.
type ChannelPublisher struct {
	ch chan<- CreatedEvent
}

func NewChannelPublisher(ch chan<- CreatedEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ev CreatedEvent) {
	select {
	case p.ch <- ev:
	default:
		metrics.NotificationsDropped.Inc()
		logger.Errorf("notification queue full, dropping event for quote request %s", ev.Request.ID)
	}
}
