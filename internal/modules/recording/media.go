package recording

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rightscard/core/internal/config"
)

// MediaStore uploads finished capture blobs to S3-compatible storage under
// content-addressed keys. A nil store means durable media storage is
// disabled; metadata persistence still works.
type MediaStore struct {
	client       *s3.Client
	bucket       string
	customDomain string
	endpoint     string
	pathStyle    bool
}

// NewMediaStore returns nil when the config is incomplete. Absence of
// storage config must never fail startup.
func NewMediaStore(opts config.S3Options) *MediaStore {
	if !opts.Configured() {
		return nil
	}

	s3opts := s3.Options{
		Region: opts.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		),
		UsePathStyle: opts.PathStyleAccess,
	}
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		s3opts.BaseEndpoint = aws.String(endpoint)
	}

	return &MediaStore{
		client:       s3.New(s3opts),
		bucket:       opts.Bucket,
		customDomain: strings.TrimRight(strings.TrimSpace(opts.CustomDomain), "/"),
		endpoint:     strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/"),
		pathStyle:    opts.PathStyleAccess,
	}
}

// Upload stores the blob and returns its object key and public URL. The key
// is the SHA-256 of the content, so re-uploading identical media is
// idempotent.
func (m *MediaStore) Upload(ctx context.Context, data []byte, medium string) (key string, url string, err error) {
	if m == nil {
		return "", "", ErrServiceUnavailable
	}
	if len(data) == 0 {
		return "", "", fmt.Errorf("empty media payload")
	}

	digest := sha256.Sum256(data)
	key = fmt.Sprintf("recordings/%s%s", hex.EncodeToString(digest[:]), extensionFor(medium))

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(medium)),
	})
	if err != nil {
		return "", "", fmt.Errorf("upload media: %w", err)
	}
	return key, m.objectURL(key), nil
}

// Delete removes an uploaded object. Missing objects are not an error.
func (m *MediaStore) Delete(ctx context.Context, key string) error {
	if m == nil {
		return ErrServiceUnavailable
	}
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

func (m *MediaStore) objectURL(key string) string {
	if m.customDomain != "" {
		return m.customDomain + "/" + key
	}
	if m.endpoint != "" {
		if m.pathStyle {
			return fmt.Sprintf("%s/%s/%s", m.endpoint, m.bucket, key)
		}
		return fmt.Sprintf("%s/%s", m.endpoint, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", m.bucket, key)
}

func extensionFor(medium string) string {
	if medium == MediumVideo {
		return ".webm"
	}
	return ".ogg"
}

func contentTypeFor(medium string) string {
	if medium == MediumVideo {
		return "video/webm"
	}
	return "audio/ogg"
}
