package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 caps DeleteObjects at this many keys per call
const maxDeleteBatch = 1000

// ObjectAPI is the slice of the S3 client the blob store needs
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// S3BlobStore keeps listing images in one bucket. Works against AWS and S3-compatible endpoints.
type S3BlobStore struct {
	client ObjectAPI
	cfg    config.StorageConfig
}

func NewS3BlobStore(ctx context.Context, cfg config.StorageConfig) (*S3BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return NewS3BlobStoreWithClient(client, cfg), nil
}

func NewS3BlobStoreWithClient(client ObjectAPI, cfg config.StorageConfig) *S3BlobStore {
	return &S3BlobStore{client: client, cfg: cfg}
}

func (s *S3BlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errs.Wrapf(err, "put object %s", key)
	}
	return s.PublicURL(key), nil
}

func (s *S3BlobStore) Delete(ctx context.Context, keys []string) error {
	for start := 0; start < len(keys); start += maxDeleteBatch {
		end := min(start+maxDeleteBatch, len(keys))

		objects := make([]types.ObjectIdentifier, 0, end-start)
		for _, k := range keys[start:end] {
			objects = append(objects, types.ObjectIdentifier{Key: aws.String(k)})
		}

		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.cfg.Bucket),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return errs.Wrap(err, "delete objects")
		}
		if len(out.Errors) > 0 {
			first := out.Errors[0]
			slog.Warn("some objects were not deleted",
				"bucket", s.cfg.Bucket,
				"failed", len(out.Errors),
				"key", aws.ToString(first.Key),
				"code", aws.ToString(first.Code))
			return errs.Newf("%d objects not deleted", len(out.Errors))
		}
	}
	return nil
}

// PublicURL prefers the configured CDN base, then the custom endpoint, then the AWS virtual-host URL
func (s *S3BlobStore) PublicURL(key string) string {
	escaped := url.PathEscape(key)
	switch {
	case s.cfg.PublicBaseURL != "":
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + escaped
	case s.cfg.Endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Bucket, escaped)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, escaped)
	}
}
