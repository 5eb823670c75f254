package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Store writes purged activities to S3 as newline-delimited JSON.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(opts Options) *S3Store {
	s3opts := s3.Options{
		Region: opts.Region,
	}

	if opts.AccessKey != "" {
		s3opts.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")
	}
	if opts.Endpoint != "" {
		s3opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3opts.UsePathStyle = true
	}

	return &S3Store{
		client: s3.New(s3opts),
		bucket: opts.Bucket,
	}
}

// EncodeJSONLines renders one JSON object per line.
func EncodeJSONLines(items []models.Activity) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i := range items {
		if err := enc.Encode(&items[i]); err != nil {
			return nil, fmt.Errorf("encode activity %s: %w", items[i].ID, err)
		}
	}
	return buf.Bytes(), nil
}

func (s *S3Store) Archive(ctx context.Context, key string, items []models.Activity) error {
	body, err := EncodeJSONLines(items)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}

	return nil
}
