package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nwpolishing/backend/internal/quotes"
	"github.com/nwpolishing/backend/internal/quotes/repository"
	"github.com/nwpolishing/backend/pkg/metrics"
)

// ErrNotFound mirrors repository.ErrNotFound for handler layers.
var ErrNotFound = repository.ErrNotFound

const maxMessageLength = 5000

// emailShape is deliberately loose: one @, no spaces, a dot in the domain.
// Deliverability is proven by replying, not by the regex.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Repository defines the persistence operations the service depends on.
type Repository interface {
	Create(ctx context.Context, qr *quotes.QuoteRequest) (string, error)
	Get(ctx context.Context, id string) (*quotes.QuoteRequest, error)
	List(ctx context.Context, opts quotes.ListOptions) ([]*quotes.QuoteRequest, error)
	Update(ctx context.Context, id string, in quotes.UpdateInput) error
	Delete(ctx context.Context, id string) error
}

// Service defines the quote request business operations used by the handler
// layer. Submit is public; the rest are operator-only and the handler is
// responsible for enforcing that.
type Service interface {
	Submit(ctx context.Context, in quotes.SubmitInput) (*quotes.QuoteRequest, error)
	Get(ctx context.Context, id string) (*quotes.QuoteRequest, error)
	List(ctx context.Context, opts quotes.ListOptions) ([]*quotes.QuoteRequest, error)
	Update(ctx context.Context, id string, in quotes.UpdateInput) error
	Delete(ctx context.Context, id string) error
}

type quoteService struct {
	repo Repository
	pub  quotes.Publisher
}

// New creates the quote request service. pub receives one event per
// successful creation, after persistence; it may be nil when no dispatcher
// is wired (tests, seed tooling).
func New(repo Repository, pub quotes.Publisher) Service {
	return &quoteService{repo: repo, pub: pub}
}

// Submit validates the submission, persists it with status "new" and
// publishes a creation event. Validation failures reject the whole
// submission before persistence; the event is only published once the write
// has succeeded, so a notification always references a stored record.
func (s *quoteService) Submit(ctx context.Context, in quotes.SubmitInput) (*quotes.QuoteRequest, error) {
	if verr := validate(in); verr != nil {
		metrics.QuoteValidationRejected.Inc()
		return nil, verr
	}

	qr := &quotes.QuoteRequest{
		Company:     strings.TrimSpace(in.Company),
		ContactName: strings.TrimSpace(in.ContactName),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Message:     in.Message,
		Status:      quotes.StatusNew,
	}
	if _, err := s.repo.Create(ctx, qr); err != nil {
		return nil, fmt.Errorf("persist quote request: %w", err)
	}
	metrics.QuoteRequestsCreated.Inc()

	if s.pub != nil {
		s.pub.Publish(quotes.CreatedEvent{Request: *qr})
	}
	return qr, nil
}

func validate(in quotes.SubmitInput) *quotes.ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(in.Company) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(in.ContactName) == "" {
		fields["contactName"] = "contact name is required"
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = "email is required"
	} else if !emailShape.MatchString(email) {
		fields["email"] = "email address is not valid"
	}
	if strings.TrimSpace(in.Message) == "" {
		fields["message"] = "message is required"
	} else if len([]rune(in.Message)) > maxMessageLength {
		fields["message"] = "message is too long"
	}
	if len(fields) == 0 {
		return nil
	}
	return &quotes.ValidationError{Fields: fields}
}

func (s *quoteService) Get(ctx context.Context, id string) (*quotes.QuoteRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *quoteService) List(ctx context.Context, opts quotes.ListOptions) ([]*quotes.QuoteRequest, error) {
	return s.repo.List(ctx, opts)
}

// Update applies operator edits. Status values are checked against the known
// set; any known status may follow any other.
func (s *quoteService) Update(ctx context.Context, id string, in quotes.UpdateInput) error {
	if in.Status == nil && in.Notes == nil {
		return &quotes.ValidationError{Fields: map[string]string{"status": "nothing to update"}}
	}
	if in.Status != nil && !quotes.ValidStatus(*in.Status) {
		return &quotes.ValidationError{Fields: map[string]string{"status": fmt.Sprintf("unknown status %q", *in.Status)}}
	}
	return s.repo.Update(ctx, id, in)
}

func (s *quoteService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
