package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nwpolishing/backend/internal/quotes"
)

var (
	ErrNotFound = errors.New("quote request not found")
)

// MemoryRepo is an in-memory repository used for unit tests and local
// development without MongoDB.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*quotes.QuoteRequest
	seq   int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*quotes.QuoteRequest)}
}

func (m *MemoryRepo) Create(ctx context.Context, qr *quotes.QuoteRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if qr.ID == "" {
		qr.ID = fmt.Sprintf("qr_%s_%d", time.Now().UTC().Format("20060102T150405"), m.seq)
	}
	now := time.Now().UTC()
	qr.CreatedAt = now
	qr.UpdatedAt = now
	cp := *qr
	m.store[qr.ID] = &cp
	return qr.ID, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*quotes.QuoteRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if qr, ok := m.store[id]; ok {
		cp := *qr
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context, opts quotes.ListOptions) ([]*quotes.QuoteRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*quotes.QuoteRequest, 0, len(m.store))
	for _, qr := range m.store {
		if opts.Status != "" && qr.Status != opts.Status {
			continue
		}
		cp := *qr
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if opts.SortAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []*quotes.QuoteRequest{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, in quotes.UpdateInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	qr, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	if in.Status != nil {
		qr.Status = *in.Status
	}
	if in.Notes != nil {
		qr.Notes = *in.Notes
	}
	qr.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
