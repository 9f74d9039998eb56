package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	appconfig "estate-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores property photos and generated documents in an
// S3-compatible bucket. Optional; the server runs without it.
type Uploader struct {
	client *s3.Client
	bucket string
	base   string
}

// NewUploader builds an S3 client from the storage config, or returns nil
// when object storage is disabled.
func NewUploader(cfg *appconfig.Config) (*Uploader, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure storage client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
		}
	})

	return &Uploader{
		client: client,
		bucket: cfg.Storage.Bucket,
		base:   cfg.Storage.Endpoint,
	}, nil
}

// UploadPhoto stores a property photo and returns its object URL.
func (u *Uploader) UploadPhoto(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("photos/%s", uuid.New().String())
	return u.put(ctx, key, data, contentType)
}

// UploadDocument archives a rendered PDF under the given record key.
func (u *Uploader) UploadDocument(ctx context.Context, kind string, recordID int, data []byte) (string, error) {
	key := fmt.Sprintf("documents/%s/%d.pdf", kind, recordID)
	return u.put(ctx, key, data, "application/pdf")
}

func (u *Uploader) put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return fmt.Sprintf("%s/%s/%s", u.base, u.bucket, key), nil
}
