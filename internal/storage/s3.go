package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"storefront/internal/config"
)

type S3Backend struct {
	client *s3.Client
	bucket string
}

func NewS3Backend(cfg config.S3Config) (*S3Backend, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Backend{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}, nil
}

func (b *S3Backend) Upload(filename string, data []byte, contentType string) (string, error) {
	_, err := b.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	return b.FileURL(filename), nil
}

func (b *S3Backend) Delete(fileURL string) error {
	// object key is the last URL segment
	parts := strings.Split(fileURL, "/")
	key := parts[len(parts)-1]
	_, err := b.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete from s3: %w", err)
	}
	return nil
}

func (b *S3Backend) FileURL(filename string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", b.bucket, filename)
}
