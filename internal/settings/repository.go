package settings

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides access to the singleton settings document.
type Repository interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Save(ctx context.Context, s *SiteSettings) error
}

// singletonID keeps the collection at exactly one document.
const singletonID = "site-settings"

// MongoRepository stores the settings as a single fixed-id document.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

// Get returns the stored settings, or the defaults when nothing has been
// saved yet. Never returns nil on success.
func (r *MongoRepository) Get(ctx context.Context) (*SiteSettings, error) {
	var s SiteSettings
	if err := r.col.FindOne(ctx, bson.M{"_id": singletonID}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return Defaults(), nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoRepository) Save(ctx context.Context, s *SiteSettings) error {
	s.ID = singletonID
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": singletonID}, s, opts)
	return err
}

// MemoryRepository is an in-memory Repository used in unit tests.
type MemoryRepository struct {
	mu sync.RWMutex
	s  *SiteSettings
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(ctx context.Context) (*SiteSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.s == nil {
		return Defaults(), nil
	}
	cp := *r.s
	return &cp, nil
}

func (r *MemoryRepository) Save(ctx context.Context, s *SiteSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	cp.ID = singletonID
	r.s = &cp
	return nil
}
