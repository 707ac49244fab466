// archive/s3.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Backend archives plans to an S3 bucket, for teams whose ground
// station infrastructure is already AWS-based rather than GCP-based.
type S3Backend struct {
	client *s3.Client
	bucket string
}

// NewS3Backend loads the standard AWS credential chain, falling back to
// the FLIGHTPLAN_AWS_ACCESS_KEY_ID/FLIGHTPLAN_AWS_SECRET_ACCESS_KEY
// environment variables when a competition laptop has no profile or
// instance role configured.
func NewS3Backend(ctx context.Context, bucket string) (*S3Backend, error) {
	var opts []func(*config.LoadOptions) error
	if ak, sk := os.Getenv("FLIGHTPLAN_AWS_ACCESS_KEY_ID"), os.Getenv("FLIGHTPLAN_AWS_SECRET_ACCESS_KEY"); ak != "" && sk != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(ak, sk, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("archive: aws config: %w", err)
	}
	return &S3Backend{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (s *S3Backend) StoreObject(path string, object any) (int64, error) {
	var buf bytes.Buffer
	n, err := encodeObject(&buf, object)
	if err != nil {
		return 0, err
	}

	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	return n, err
}

func (s *S3Backend) ReadObject(path string, result any) error {
	out, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()
	return decodeObject(out.Body, result)
}

func (s *S3Backend) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			names = append(names, aws.ToString(obj.Key))
		}
	}
	return names, nil
}

func (s *S3Backend) Close() error { return nil }

var _ io.Closer = (*S3Backend)(nil)
