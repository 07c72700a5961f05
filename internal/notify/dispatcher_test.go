package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nwpolishing/backend/internal/quotes"
	"github.com/nwpolishing/backend/internal/settings"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) all() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

func newTestSettings(t *testing.T, email string) *settings.Service {
	t.Helper()
	repo := settings.NewMemoryRepository()
	s := settings.Defaults()
	s.ContactInfo.Email = email
	require.NoError(t, repo.Save(context.Background(), s))
	return settings.NewService(repo)
}

func runDispatcher(d *Dispatcher) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatcherSendsNotification(t *testing.T) {
	events := make(chan quotes.CreatedEvent, 4)
	mailer := &recordingMailer{}
	d := NewDispatcher(events, newTestSettings(t, "sales@example.com"), mailer, "https://nwpolishing.co.uk", time.Second)
	stop := runDispatcher(d)
	defer stop()

	events <- quotes.CreatedEvent{Request: quotes.QuoteRequest{
		ID:          "abc123",
		Company:     "Acme Fabrication",
		ContactName: "Jo Smith",
		Email:       "jo@acme.example",
		Phone:       "0161 555 0100",
		Message:     "Two stainless tanks\nneed mirror finish",
	}}

	waitFor(t, func() bool { return len(mailer.all()) == 1 })
	got := mailer.all()[0]
	require.Equal(t, "sales@example.com", got.To)
	require.Equal(t, "New Quote Request from Acme Fabrication", got.Subject)
	require.Contains(t, got.Body, "Jo Smith")
	require.Contains(t, got.Body, `mailto:jo@acme.example`)
	require.Contains(t, got.Body, "tel:0161")
	require.Contains(t, got.Body, ">0161 555 0100</a>")
	require.Contains(t, got.Body, "https://nwpolishing.co.uk/admin/quote-requests/abc123")
}

func TestDispatcherSkipsWithoutAddress(t *testing.T) {
	events := make(chan quotes.CreatedEvent, 4)
	mailer := &recordingMailer{}
	d := NewDispatcher(events, newTestSettings(t, ""), mailer, "", time.Second)

	events <- quotes.CreatedEvent{Request: quotes.QuoteRequest{ID: "q1", Company: "Acme"}}
	close(events)
	d.Run(context.Background())

	require.Empty(t, mailer.all())
}

func TestDispatcherSurvivesSendFailure(t *testing.T) {
	events := make(chan quotes.CreatedEvent, 4)
	mailer := &recordingMailer{err: errors.New("relay down")}
	d := NewDispatcher(events, newTestSettings(t, "sales@example.com"), mailer, "", time.Second)

	events <- quotes.CreatedEvent{Request: quotes.QuoteRequest{ID: "q1", Company: "Acme"}}
	events <- quotes.CreatedEvent{Request: quotes.QuoteRequest{ID: "q2", Company: "Beta"}}
	close(events)
	// must not panic or stop on the first failure
	d.Run(context.Background())

	require.Empty(t, mailer.all())
}

func TestDispatcherDrainsOnShutdown(t *testing.T) {
	events := make(chan quotes.CreatedEvent, 4)
	mailer := &recordingMailer{}
	d := NewDispatcher(events, newTestSettings(t, "sales@example.com"), mailer, "", time.Second)

	events <- quotes.CreatedEvent{Request: quotes.QuoteRequest{ID: "q1", Company: "Acme"}}
	events <- quotes.CreatedEvent{Request: quotes.QuoteRequest{ID: "q2", Company: "Beta"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Run(ctx)

	require.Len(t, mailer.all(), 2)
}

func TestRenderQuoteEmailOmitsPhoneRow(t *testing.T) {
	subject, body, err := RenderQuoteEmail(quotes.QuoteRequest{
		ID:          "q1",
		Company:     "Acme",
		ContactName: "Jo",
		Email:       "jo@acme.example",
		Message:     "hello",
	}, "")
	require.NoError(t, err)
	require.Equal(t, "New Quote Request from Acme", subject)
	require.NotContains(t, body, "Phone")
	require.NotContains(t, body, "admin/quote-requests")
}

func TestRenderQuoteEmailEscapesHTML(t *testing.T) {
	_, body, err := RenderQuoteEmail(quotes.QuoteRequest{
		Company:     "Acme",
		ContactName: "Jo",
		Email:       "jo@acme.example",
		Message:     `<script>alert("x")</script>`,
	}, "")
	require.NoError(t, err)
	require.NotContains(t, body, "<script>")
	require.Contains(t, body, "&lt;script&gt;")
}
