// Package storage keeps the persistent slots as JSON objects in an S3-compatible bucket.
package storage

import (
	"context"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Default timeout for a single object operation
const DefaultObjectTimeout = 15 * time.Second

// ObjectAPI is the part of *s3.Client the object store needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ObjectKey maps a slot key to its object name, e.g. "astgym/gym_ai_logs.json".
func ObjectKey(prefix, key string) string {
	return path.Join(prefix, key+".json")
}
