// Package store persists the opaque byte stream spec.md §6 describes
// for AnonymizationResult serialization. It compresses with Zstandard
// before upload and decompresses on download, following the teacher's
// pkg/util zstd-wrapping idiom, against an S3 bucket reached through
// the teacher's narrow S3Client seam (pkg/cloud/aws) so tests can
// substitute a fake without touching the real AWS SDK.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/klauspost/compress/zstd"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// S3Client is the subset of the AWS SDK v2 S3 client this package
// needs, narrowed the way the teacher's pkg/cloud/aws.S3Client is, so
// that tests can substitute an in-memory fake.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var _ S3Client = &s3.Client{}

// Store persists and retrieves one serialized AnonymizationResult per
// key. A key is caller-chosen (e.g. a job id); this package attaches
// no structure to it beyond using it as the S3 object key.
type Store struct {
	client     S3Client
	bucketName string
	keyPrefix  string
}

// New returns a Store backed by bucketName, prefixing every object key
// with keyPrefix (which may be empty).
func New(client S3Client, bucketName, keyPrefix string) *Store {
	return &Store{client: client, bucketName: bucketName, keyPrefix: keyPrefix}
}

func (s *Store) objectKey(key string) string {
	return s.keyPrefix + key
}

// Save zstd-compresses data and uploads it under key, overwriting any
// existing object.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	var compressed bytes.Buffer
	encoder, err := zstd.NewWriter(&compressed)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to create zstd encoder: %s", err)
	}
	if _, err := encoder.Write(data); err != nil {
		encoder.Close()
		return status.Errorf(codes.Internal, "failed to compress persisted state: %s", err)
	}
	if err := encoder.Close(); err != nil {
		return status.Errorf(codes.Internal, "failed to finalize zstd stream: %s", err)
	}

	body := compressed.Bytes()
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
		Body:   bytes.NewReader(body),
	})
	return convertS3Error(err)
}

// Load downloads and decompresses the object stored under key.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return nil, convertS3Error(err)
	}
	defer result.Body.Close()

	decoder, err := zstd.NewReader(result.Body)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create zstd decoder: %s", err)
	}
	defer decoder.Close()

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, status.Errorf(codes.DataLoss, "failed to decompress persisted state: %s", err)
	}
	return data, nil
}

// Delete removes the object stored under key. Deleting a missing key
// is not an error, matching S3's own DeleteObject semantics.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	return convertS3Error(err)
}

func convertS3Error(err error) error {
	if err == nil {
		return nil
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return status.Errorf(codes.NotFound, "%s", err)
	}
	return fmt.Errorf("S3 request failed: %w", err)
}
