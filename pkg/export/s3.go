package export

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the subset of the S3 API the store uses; *s3.Client
// satisfies it.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store publishes snapshots to an S3 bucket.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := export.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "site/")
type S3Store struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed store. prefix is prepended to every
// object key (e.g. "site/").
func NewS3Store(client S3Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Put implements Store.
func (s *S3Store) Put(ctx context.Context, name string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + name),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	return err
}
