package quotes

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Status tracks how far staff have taken a quote request. Values match the
// select options shown in the operator UI.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQuoteSent Status = "quote-sent"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// ValidStatus reports whether s is one of the five known statuses. There is
// no transition graph: operators may move a request between any two statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQuoteSent, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// QuoteRequest is a customer-submitted request for a price quote.
type QuoteRequest struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Company     string    `json:"company" bson:"company"`
	ContactName string    `json:"contactName" bson:"contactName"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Message     string    `json:"message" bson:"message"`
	Status      Status    `json:"status" bson:"status"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SubmitInput is the public submission payload.
type SubmitInput struct {
	Company     string `json:"company"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
}

// ListOptions carries filter, sort and pagination parameters for operator
// listings.
type ListOptions struct {
	// Status filters by a single status; empty returns all.
	Status Status
	// SortAsc orders by createdAt ascending when true, descending otherwise.
	SortAsc bool
	Limit   int
	Offset  int
}

// UpdateInput carries the operator-editable fields. Nil means "leave as is".
type UpdateInput struct {
	Status *Status `json:"status"`
	Notes  *string `json:"notes"`
}

// ValidationError reports per-field problems with a submission. Requests
// failing validation are rejected before anything is persisted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid submission: " + strings.Join(names, ", ")
}

// CreatedEvent is published after a quote request has been persisted. The
// full record is carried so consumers never need to re-read it.
type CreatedEvent struct {
	Request QuoteRequest
}

// Publisher decouples intake from whatever reacts to new requests. The
// submission response never waits on a subscriber.
type Publisher interface {
	Publish(ev CreatedEvent)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ev CreatedEvent)

func (f PublisherFunc) Publish(ev CreatedEvent) { f(ev) }

func (s Status) String() string { return string(s) }

// ParseStatus converts user input to a Status, failing on unknown values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !ValidStatus(s) {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}
