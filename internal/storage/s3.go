// internal/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/vastra/admin-backend/internal/config"
)

// ErrKeyExists is returned by Upload when upsert is false and the key is
// already present in the bucket.
var ErrKeyExists = errors.New("storage: key already exists")

type S3Client struct {
	s3            *s3.S3
	cloudFrontURL string
	region        string
}

func NewS3Client(cfg *config.Config) (*S3Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Client{
		s3:            s3.New(sess),
		cloudFrontURL: cfg.AWS.CloudFrontURL,
		region:        cfg.AWS.Region,
	}, nil
}

func (c *S3Client) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string, upsert bool) error {
	if !upsert {
		// Best-effort existence guard. Keys embed epoch millis plus a
		// sequence index, so a lost race here is not a realistic concern.
		_, err := c.s3.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err == nil {
			return ErrKeyExists
		}
		var aerr awserr.RequestFailure
		if !errors.As(err, &aerr) || aerr.StatusCode() != 404 {
			return fmt.Errorf("failed to check key %s: %w", key, err)
		}
	}

	fileBytes, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read upload body: %w", err)
	}

	_, err = c.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		CacheControl:  aws.String("max-age=3600"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return nil
}

func (c *S3Client) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	err := c.s3.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s/%s: %w", bucket, prefix, err)
	}

	return keys, nil
}

func (c *S3Client) Remove(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]*s3.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, &s3.ObjectIdentifier{Key: aws.String(key)})
	}

	// DeleteObjects reports no error for keys that do not exist, which is
	// exactly the idempotency the callers rely on.
	_, err := c.s3.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &s3.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to remove objects from %s: %w", bucket, err)
	}

	return nil
}

func (c *S3Client) PublicURL(bucket, key string) string {
	if c.cloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", c.cloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, c.region, key)
}
