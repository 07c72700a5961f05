package repository

import (
	"context"
	"testing"
	"time"

	"github.com/nwpolishing/backend/internal/quotes"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoCRUD(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	qr := &quotes.QuoteRequest{
		Company:     "Acme Ltd",
		ContactName: "J. Smith",
		Email:       "j@acme.test",
		Message:     "Need 50 brackets polished",
		Status:      quotes.StatusNew,
	}
	id, err := r.Create(ctx, qr)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Acme Ltd", got.Company)
	require.Equal(t, quotes.StatusNew, got.Status)
	require.False(t, got.CreatedAt.IsZero())

	st := quotes.StatusContacted
	notes := "called them back"
	require.NoError(t, r.Update(ctx, id, quotes.UpdateInput{Status: &st, Notes: &notes}))
	got2, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, quotes.StatusContacted, got2.Status)
	require.Equal(t, "called them back", got2.Notes)
	require.True(t, got2.UpdatedAt.After(got2.CreatedAt) || got2.UpdatedAt.Equal(got2.CreatedAt))

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.Get(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, id), ErrNotFound)
}

func TestMemoryRepoList_FilterSortPaginate(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	mk := func(company string, st quotes.Status) string {
		id, err := r.Create(ctx, &quotes.QuoteRequest{
			Company: company, ContactName: "c", Email: "c@x.test", Message: "m", Status: st,
		})
		require.NoError(t, err)
		// keep createdAt strictly ordered
		time.Sleep(time.Millisecond)
		return id
	}
	first := mk("First", quotes.StatusNew)
	mk("Second", quotes.StatusContacted)
	third := mk("Third", quotes.StatusNew)

	// default: newest first
	all, err := r.List(ctx, quotes.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, third, all[0].ID)

	// ascending
	asc, err := r.List(ctx, quotes.ListOptions{SortAsc: true})
	require.NoError(t, err)
	require.Equal(t, first, asc[0].ID)

	// status filter
	news, err := r.List(ctx, quotes.ListOptions{Status: quotes.StatusNew})
	require.NoError(t, err)
	require.Len(t, news, 2)
	for _, qr := range news {
		require.Equal(t, quotes.StatusNew, qr.Status)
	}

	// pagination
	page, err := r.List(ctx, quotes.ListOptions{SortAsc: true, Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Second", page[0].Company)

	// offset past the end
	empty, err := r.List(ctx, quotes.ListOptions{Offset: 10})
	require.NoError(t, err)
	require.Empty(t, empty)
}
