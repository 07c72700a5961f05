package media

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nwpolishing/backend/internal/config"
)

// Resolver turns the object keys stored on content documents into URLs the
// site can render. Uploads happen in the admin tool, not here.
type Resolver interface {
	ResolveURL(ctx context.Context, key string) (string, error)
}

// MinIOResolver issues presigned GET URLs against the media bucket.
type MinIOResolver struct {
	client  *minio.Client
	bucket  string
	expires time.Duration
}

// NewMinIOResolver creates a resolver for the configured media bucket.
func NewMinIOResolver(cfg *config.MinIOConfig) (*MinIOResolver, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	return &MinIOResolver{client: mc, bucket: cfg.Bucket, expires: time.Hour}, nil
}

func (r *MinIOResolver) ResolveURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	reqParams := make(url.Values)
	presigned, err := r.client.PresignedGetObject(ctx, r.bucket, key, r.expires, reqParams)
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}

// Passthrough returns keys unchanged. Used when no object storage is
// configured and content documents already hold absolute URLs.
type Passthrough struct{}

func (Passthrough) ResolveURL(ctx context.Context, key string) (string, error) {
	return key, nil
}
