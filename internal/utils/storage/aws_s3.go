package storage

import (
	"Zero-Desperdicio/internal/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrBucketNotConfigured = errors.New("AWS_S3_BUCKET is not configured")
)

type (
	AwsS3 interface {
		PutObject(ctx context.Context, key string, body []byte, contentType string) error
		GetObject(ctx context.Context, key string) ([]byte, error)
	}

	awsS3 struct {
		client *s3.Client
		bucket string
	}
)

// LoadAwsConfig builds an AWS config from the application settings. Static
// keys are used when configured, otherwise the default credential chain.
func LoadAwsConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(utils.GetConfig("AWS_S3_REGION")),
	}
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

func NewAwsS3() (AwsS3, error) {
	cfg, err := LoadAwsConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	if bucket == "" {
		return nil, ErrBucketNotConfigured
	}
	return NewAwsS3WithClient(s3.NewFromConfig(cfg), bucket), nil
}

func NewAwsS3WithClient(client *s3.Client, bucket string) AwsS3 {
	return &awsS3{client: client, bucket: bucket}
}

func (a *awsS3) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}

func (a *awsS3) GetObject(ctx context.Context, key string) ([]byte, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
