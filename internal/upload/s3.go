package upload

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// s3Uploader implements Uploader by writing objects to an AWS S3 bucket.
type s3Uploader struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Uploader creates a new S3-based image uploader.
func NewS3Uploader(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Uploader, error) {
	logger = logger.With().Str("component", "s3-uploader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 uploader initialised")

	return &s3Uploader{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload validates the file type, stores the content under a generated key
// and returns the public object URL.
func (u *s3Uploader) Upload(ctx context.Context, filename string, content io.Reader, folder string) (string, error) {
	ext, err := ValidateExtension(filename)
	if err != nil {
		return "", err
	}

	key := path.Join(u.prefix, folder, uuid.NewString()+ext)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentTypes[ext]),
	})
	if err != nil {
		u.logger.Error().
			Err(err).
			Str("bucket", u.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to upload image to S3 (bucket=%s, key=%s): %w", u.bucket, key, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)

	u.logger.Info().
		Str("key", key).
		Str("url", url).
		Msg("image uploaded to S3")

	return url, nil
}

// Remove deletes a stored object.
func (u *s3Uploader) Remove(ctx context.Context, folder, filename string) error {
	key := path.Join(u.prefix, folder, filename)

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		u.logger.Error().Err(err).Str("key", key).Msg("failed to delete object from S3")
		return fmt.Errorf("failed to delete image from S3 (key=%s): %w", key, err)
	}

	return nil
}
