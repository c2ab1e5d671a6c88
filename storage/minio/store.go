// Package minio stores asset attachments in an S3-compatible bucket.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/storage"
)

// Config holds the connection settings for a bucket.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix is prepended to every object key, e.g. "uploads/".
	Prefix string
	Secure bool
}

// Store implements storage.AttachmentStore on a MinIO bucket.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
	logger *slog.Logger
}

var _ storage.AttachmentStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New connects to cfg.Endpoint and creates the bucket if it does not exist.
func New(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := newStore(client, cfg.Bucket, cfg.Prefix, opts...)

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		s.logger.Info("created attachment bucket", "bucket", cfg.Bucket)
	}

	return s, nil
}

func newStore(client *minio.Client, bucket, prefix string, opts ...Option) *Store {
	s := &Store{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store uploads data under the base name of suggestedName.
func (s *Store) Store(ctx context.Context, data []byte, suggestedName string) (string, error) {
	ref, err := storage.CleanReference(suggestedName)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.objectKey(ref), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  core.ContentType(ref),
			UserMetadata: map[string]string{"digest": core.DigestContent(data)},
		})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", ref, err)
	}

	s.logger.Debug("stored attachment", "bucket", s.bucket, "ref", ref, "bytes", len(data))
	return ref, nil
}

// Retrieve downloads the object for ref.
func (s *Store) Retrieve(ctx context.Context, ref string) ([]byte, error) {
	if err := storage.ValidateReference(ref); err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.objectKey(ref), minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapError(ref, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.mapError(ref, err)
	}
	return data, nil
}

// Delete removes the object for ref.
func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := storage.ValidateReference(ref); err != nil {
		return err
	}

	key := s.objectKey(ref)
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		return s.mapError(ref, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return s.mapError(ref, err)
	}
	return nil
}

// Count returns the number of objects under the store prefix.
func (s *Store) Count(ctx context.Context) (int, error) {
	// Stops the listing goroutine when returning early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	count := 0
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}) {
		if obj.Err != nil {
			return 0, obj.Err
		}
		count++
	}
	return count, nil
}

func (s *Store) objectKey(ref string) string {
	return s.prefix + ref
}

func (s *Store) mapError(ref string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchObject":
		return fmt.Errorf("%w: attachment %s", storage.ErrNotFound, ref)
	case "NoSuchBucket":
		return fmt.Errorf("%w: bucket %s", storage.ErrNotFound, s.bucket)
	}
	return err
}

// normalizePrefix returns "" or a prefix ending in exactly one "/".
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return path.Clean(prefix) + "/"
}
