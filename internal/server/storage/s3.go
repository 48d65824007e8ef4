package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

type S3Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
	Expires      time.Duration
}

// S3Store presigns against any S3-compatible endpoint (MinIO in dev).
type S3Store struct {
	presign *s3.PresignClient
	bucket  string
	expires time.Duration
}

func NewS3Store(ctx context.Context, o S3Options) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(o.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(so *s3.Options) {
		so.BaseEndpoint = aws.String(o.BaseEndpoint)
		so.UsePathStyle = true
	})

	expires := o.Expires
	if expires <= 0 {
		expires = 15 * time.Minute
	}
	return &S3Store{presign: newS3PresignClient(client), bucket: o.Bucket, expires: expires}, nil
}

func (s *S3Store) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	req, err := presignPutObject(s.presign, ctx, in, s3.WithPresignExpires(s.expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
