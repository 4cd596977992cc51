// Package blob archives snapshot files to S3-compatible object storage.
package blob

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
)

type Config struct {
	// Endpoint overrides the AWS endpoint for MinIO, R2 and similar.
	Endpoint       string
	Region         string
	Bucket         string
	Prefix         string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
}

// Archiver uploads files under Prefix in Bucket.
type Archiver struct {
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

func New(ctx context.Context, cfg Config) (*Archiver, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("blob: bucket name is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "blob: load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(normaliseEndpoint(cfg.Endpoint))
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return newArchiver(client, cfg.Bucket, cfg.Prefix), nil
}

func newArchiver(client manager.UploadAPIClient, bucket, prefix string) *Archiver {
	return &Archiver{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   prefix,
	}
}

// Archive uploads the file at local and returns its object key.
func (a *Archiver) Archive(ctx context.Context, local string) (string, error) {
	f, err := os.Open(local)
	if err != nil {
		return "", errors.Wrapf(err, "blob: open %s", local)
	}
	defer f.Close()

	key := path.Join(a.prefix, filepath.Base(local))
	if _, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("application/octet-stream"),
	}); err != nil {
		return "", errors.Wrapf(err, "blob: upload %s", key)
	}
	return key, nil
}

func normaliseEndpoint(endpoint string) string {
	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		return endpoint
	}
	return "https://" + endpoint
}
