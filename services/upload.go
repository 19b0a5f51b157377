package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// UploadKind distinguishes a durably stored asset from the in-process
// fallback encoding. Callers must not treat the two alike: a LocalFallback
// URL lives only in the record it is pasted into.
type UploadKind string

const (
	UploadStored        UploadKind = "stored"
	UploadLocalFallback UploadKind = "local_fallback"
)

// UploadResult is the explicit outcome of an upload attempt.
type UploadResult struct {
	Kind UploadKind `json:"kind"`
	URL  string     `json:"url"`
}

// Stored reports whether the asset was durably persisted.
func (r UploadResult) Stored() bool {
	return r.Kind == UploadStored
}

// ObjectPutter is the slice of the S3 API the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Uploader stores images in an S3 bucket. On any storage failure it falls
// back to a base64 data URL built from the bytes, reported as a distinct
// result kind rather than masked as a stored URL.
type Uploader struct {
	client        ObjectPutter
	bucket        string
	publicBaseURL string
	logger        zerolog.Logger
}

// NewUploader builds an Uploader. A nil client or empty bucket puts it in
// fallback-only mode.
func NewUploader(client ObjectPutter, bucket, publicBaseURL string) *Uploader {
	return &Uploader{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        log.With().Str("service", "uploader").Logger(),
	}
}

// Upload attempts to persist the file and returns where it ended up. The
// object key is the sanitized filename prefixed with a millisecond timestamp,
// matching the asset naming the site already uses.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, data []byte) UploadResult {
	key := ObjectKey(filename, time.Now())

	if u.client == nil || u.bucket == "" {
		u.logger.Warn().Str("key", key).Msg("Object storage not configured, using local fallback")
		return u.fallback(contentType, data)
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		u.logger.Error().Err(err).Str("key", key).Msg("Object storage upload failed, using local fallback")
		return u.fallback(contentType, data)
	}

	u.logger.Info().Str("key", key).Msg("Image uploaded to object storage")
	return UploadResult{Kind: UploadStored, URL: u.publicURL(key)}
}

func (u *Uploader) publicURL(key string) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key)
}

func (u *Uploader) fallback(contentType string, data []byte) UploadResult {
	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return UploadResult{Kind: UploadLocalFallback, URL: uri}
}

// ObjectKey builds the storage key for a filename at a given instant.
func ObjectKey(filename string, now time.Time) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%d_%s", now.UnixMilli(), sanitized)
}
