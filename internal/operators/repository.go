package operators

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines persistence operations for operator accounts
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Operator, error)
	GetByID(ctx context.Context, id string) (*Operator, error)
	Upsert(ctx context.Context, op *Operator) (*Operator, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new repository for the given collection and
// ensures the unique email index exists.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*Operator, error) {
	var op Operator
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&op); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &op, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Operator, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var op Operator
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&op); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &op, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, op *Operator) (*Operator, error) {
	now := time.Now().UTC()
	op.UpdatedAt = now

	filter := bson.M{"email": op.Email}
	set := bson.M{
		"$set": bson.M{
			"name":         op.Name,
			"passwordHash": op.PasswordHash,
			"updatedAt":    op.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated Operator
	if err := r.col.FindOneAndUpdate(ctx, filter, set, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return op, nil
		}
		return nil, err
	}
	return &updated, nil
}

// MemoryRepository is an in-memory Repository used in unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Operator
	seq   int
	email map[string]string // email -> id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: map[string]*Operator{}, email: map[string]string{}}
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.email[email]
	if !ok {
		return nil, nil
	}
	op := *r.byID[id]
	return &op, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, op *Operator) (*Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if id, ok := r.email[op.Email]; ok {
		existing := r.byID[id]
		existing.Name = op.Name
		existing.PasswordHash = op.PasswordHash
		existing.UpdatedAt = now
		cp := *existing
		return &cp, nil
	}
	r.seq++
	op.ID = "op_" + time.Now().Format("20060102T150405.000000000")
	op.CreatedAt = now
	op.UpdatedAt = now
	cp := *op
	r.byID[op.ID] = &cp
	r.email[op.Email] = op.ID
	out := cp
	return &out, nil
}
