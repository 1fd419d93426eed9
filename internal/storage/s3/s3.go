// Package s3 stores media files in an S3-compatible object store such as
// MinIO.
package s3

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shubhajit-paul-web/youtube-fullstack/internal/storage"
	apperrors "github.com/shubhajit-paul-web/youtube-fullstack/pkg/errors"
)

// Config holds the connection settings for the object store.
type Config struct {
	Endpoint  string // e.g. http://minio:9000, empty for AWS
	PublicURL string // base URL media links are built from
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// UsePathStyle addresses objects as endpoint/bucket/key, which is what
	// MinIO expects.
	UsePathStyle bool
}

// Storage implements storage.Storage on top of the AWS SDK.
type Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// New builds an S3 client from static credentials and verifies nothing; the
// first Upload surfaces connectivity problems.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
	}

	return &Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// Upload puts the object and returns its public URL.
func (s *Storage) Upload(ctx context.Context, input *storage.UploadInput) (*storage.UploadResult, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(input.Key),
		Body:          input.Data,
		ContentType:   aws.String(input.ContentType),
		ContentLength: aws.Int64(input.Size),
	})
	if err != nil {
		return nil, apperrors.Provider("object storage", err)
	}

	return &storage.UploadResult{
		Key: input.Key,
		URL: fmt.Sprintf("%s/%s", s.publicURL, input.Key),
	}, nil
}

// Delete removes the object. Deleting a missing key succeeds, which suits the
// best-effort cleanup callers do after a failed insert.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return apperrors.Provider("object storage", err)
	}
	return nil
}

// KeyFromURL recovers the object key from a public URL built by Upload.
// It returns false when the URL belongs to a different store.
func (s *Storage) KeyFromURL(url string) (string, bool) {
	prefix := s.publicURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
