package repository

import (
	"context"

	"github.com/nwpolishing/backend/internal/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo reads content collections maintained by the admin tool. All
// listings sort by order ascending with createdAt breaking ties, which is
// how the site pages expect content to appear.
type MongoRepo struct {
	services *mongo.Collection
	projects *mongo.Collection
	slides   *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	services := db.Collection("services")
	idx := mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = services.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{
		services: services,
		projects: db.Collection("projects"),
		slides:   db.Collection("heroSlides"),
	}
}

var orderSort = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}

func (m *MongoRepo) ListServices(ctx context.Context) ([]*content.Service, error) {
	cur, err := m.services.Find(ctx, bson.M{}, options.Find().SetSort(orderSort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.Service{}
	for cur.Next(ctx) {
		var s content.Service
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, cur.Err()
}

func (m *MongoRepo) GetServiceBySlug(ctx context.Context, slug string) (*content.Service, error) {
	var s content.Service
	if err := m.services.FindOne(ctx, bson.M{"slug": slug}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (m *MongoRepo) ListProjects(ctx context.Context, featured *bool) ([]*content.Project, error) {
	filter := bson.M{}
	if featured != nil {
		filter["featured"] = *featured
	}
	cur, err := m.projects.Find(ctx, filter, options.Find().SetSort(orderSort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.Project{}
	for cur.Next(ctx) {
		var p content.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (m *MongoRepo) ListActiveHeroSlides(ctx context.Context) ([]*content.HeroSlide, error) {
	cur, err := m.slides.Find(ctx, bson.M{"active": true}, options.Find().SetSort(orderSort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.HeroSlide{}
	for cur.Next(ctx) {
		var h content.HeroSlide
		if err := cur.Decode(&h); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, cur.Err()
}
