package notify

import (
	"context"
	"time"

	"github.com/nwpolishing/backend/internal/quotes"
	"github.com/nwpolishing/backend/internal/settings"
	"github.com/nwpolishing/backend/pkg/logger"
	"github.com/nwpolishing/backend/pkg/metrics"
)

// Dispatcher consumes quote creation events and emails the configured
// contact address. Every delivery is best effort: a missing address skips
// the event, a transport failure is logged and counted, and nothing is
// retried. Intake is never affected either way.
type Dispatcher struct {
	events       <-chan quotes.CreatedEvent
	settings     *settings.Service
	mailer       Mailer
	adminBaseURL string
	sendTimeout  time.Duration
}

func NewDispatcher(events <-chan quotes.CreatedEvent, settingsSvc *settings.Service, mailer Mailer, adminBaseURL string, sendTimeout time.Duration) *Dispatcher {
	if sendTimeout <= 0 {
		sendTimeout = 15 * time.Second
	}
	return &Dispatcher{
		events:       events,
		settings:     settingsSvc,
		mailer:       mailer,
		adminBaseURL: adminBaseURL,
		sendTimeout:  sendTimeout,
	}
}

// Run processes events until ctx is cancelled, then drains whatever is
// already queued before returning. Intended to run as a goroutine started
// from main.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				return
			}
			d.handle(ctx, ev)
		case <-ctx.Done():
			d.drain()
			return
		}
	}
}

// drain delivers queued events after shutdown has begun. Each send gets its
// own timeout since the run context is already cancelled.
func (d *Dispatcher) drain() {
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				return
			}
			d.handle(context.Background(), ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev quotes.CreatedEvent) {
	req := ev.Request

	lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	to, err := d.settings.NotificationEmail(lookupCtx)
	cancel()
	if err != nil {
		metrics.NotificationsFailed.Inc()
		logger.Errorf("notification for quote request %s: settings lookup failed: %v", req.ID, err)
		return
	}
	if to == "" {
		metrics.NotificationsSkipped.Inc()
		logger.Warnf("notification for quote request %s skipped: no contact email configured", req.ID)
		return
	}

	subject, body, err := RenderQuoteEmail(req, d.adminBaseURL)
	if err != nil {
		metrics.NotificationsFailed.Inc()
		logger.Errorf("notification for quote request %s: %v", req.ID, err)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()
	if err := d.mailer.Send(sendCtx, to, subject, body); err != nil {
		metrics.NotificationsFailed.Inc()
		logger.Errorf("notification for quote request %s: send to %s failed: %v", req.ID, to, err)
		return
	}
	metrics.NotificationsSent.Inc()
	logger.Infof("quote request %s: notification sent to %s", req.ID, to)
}
