package repository

import (
	"context"
	"time"

	"github.com/nwpolishing/backend/internal/quotes"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements a MongoDB-backed repository for quote requests.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// operator listings filter by status and sort by createdAt
	idx := mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, qr *quotes.QuoteRequest) (string, error) {
	now := time.Now().UTC()
	qr.CreatedAt = now
	qr.UpdatedAt = now
	if qr.ID == "" {
		qr.ID = primitive.NewObjectID().Hex()
	}
	if _, err := m.col.InsertOne(ctx, qr); err != nil {
		return "", err
	}
	return qr.ID, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*quotes.QuoteRequest, error) {
	var qr quotes.QuoteRequest
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&qr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &qr, nil
}

func (m *MongoRepo) List(ctx context.Context, opts quotes.ListOptions) ([]*quotes.QuoteRequest, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	dir := -1
	if opts.SortAsc {
		dir = 1
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: dir}})
	if opts.Offset > 0 {
		findOpts.SetSkip(int64(opts.Offset))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	cur, err := m.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*quotes.QuoteRequest{}
	for cur.Next(ctx) {
		var qr quotes.QuoteRequest
		if err := cur.Decode(&qr); err != nil {
			return nil, err
		}
		out = append(out, &qr)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Update(ctx context.Context, id string, in quotes.UpdateInput) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
