package dataset

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ============================================================================
// S3 SOURCE — datasets in S3-compatible object storage
// ============================================================================

// S3Config holds the configuration for an S3 source.
type S3Config struct {
	Endpoint        string // endpoint URL, for S3-compatible services
	Region          string // AWS region
	BucketName      string // bucket holding the datasets
	AccessKeyID     string // access key ID
	SecretAccessKey string // secret access key
}

// S3Source reads datasets from an S3-compatible bucket.
type S3Source struct {
	client *s3.Client
	bucket string
}

// NewS3Source creates an S3 source with the specified configuration.
func NewS3Source(ctx context.Context, cfg S3Config) (*S3Source, error) {
	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // required for MinIO and other S3-compatible services
		}
	})

	return &S3Source{client: client, bucket: cfg.BucketName}, nil
}

// Open downloads a dataset object and returns its body.
func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

// List returns the keys of all objects in the bucket.
func (s *S3Source) List(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, object := range page.Contents {
			if object.Key != nil {
				names = append(names, *object.Key)
			}
		}
	}
	return names, nil
}
