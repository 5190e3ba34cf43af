package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"astgym/gym-ai/internal/config"
	"astgym/gym-ai/internal/logger"
	"astgym/gym-ai/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3Storage implements repository.KeyValueStore on an S3-compatible backend.
type s3Storage struct {
	client     ObjectAPI
	bucketName string
	prefix     string
	log        *logger.Logger
}

// NewS3Client builds a client for AWS or any S3-compatible endpoint (MinIO, Spaces).
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS SDK config: %w", err)
	}

	endpoint := endpointURL(cfg.Endpoint, cfg.UseSSL)
	return s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // required by most S3-compatible services
		}
	}), nil
}

func endpointURL(endpoint string, useSSL bool) string {
	if endpoint == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// NewS3Storage creates the object-backed store. Objects live under prefix in bucket.
func NewS3Storage(client ObjectAPI, bucket, prefix string, log *logger.Logger) repository.KeyValueStore {
	if log == nil {
		log = logger.Nop()
	}
	log.Info("S3 storage initialized", "bucket", bucket, "prefix", prefix)
	return &s3Storage{
		client:     client,
		bucketName: bucket,
		prefix:     prefix,
		log:        log.With("component", "S3Storage"),
	}
}

func (s *s3Storage) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultObjectTimeout)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(ObjectKey(s.prefix, key)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotFound
		}
		s.log.Error("failed to get object", "key", key, "error", err)
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (s *s3Storage) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultObjectTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(ObjectKey(s.prefix, key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.log.Error("failed to put object", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete is idempotent; S3 does not report missing keys here.
func (s *s3Storage) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultObjectTimeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(ObjectKey(s.prefix, key)),
	})
	if err != nil {
		s.log.Error("failed to delete object", "key", key, "error", err)
		return err
	}
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
