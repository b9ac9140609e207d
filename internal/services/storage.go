package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const (
	downloadAttempts = 3
	downloadDelay    = 500 * time.Millisecond
)

// StorageService fetches résumé files from an S3-compatible bucket.
type StorageService interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Bucket() string
}

type storageService struct {
	client *s3.Client
	bucket string
	delay  time.Duration
}

// NewR2StorageService builds a client for a Cloudflare R2 bucket.
func NewR2StorageService(ctx context.Context, accountID, bucket, accessKey, secretKey string) (StorageService, error) {
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID))
	})

	return newStorageService(client, bucket, downloadDelay), nil
}

func newStorageService(client *s3.Client, bucket string, delay time.Duration) StorageService {
	return &storageService{
		client: client,
		bucket: bucket,
		delay:  delay,
	}
}

func (s *storageService) Bucket() string {
	return s.bucket
}

// Download retries transient failures; a missing key fails immediately.
func (s *storageService) Download(ctx context.Context, key string) ([]byte, error) {
	return retry(ctx, downloadAttempts, s.delay, isRetryableDownload, func() ([]byte, error) {
		return s.download(ctx, key)
	})
}

func (s *storageService) download(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return data, nil
}

func isRetryableDownload(err error) bool {
	var noSuchKey *types.NoSuchKey
	return !errors.As(err, &noSuchKey)
}
