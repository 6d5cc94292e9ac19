package external

import (
	"bytes"
	"context"
	"time"

	awsconfig "github.com/meteroid-oss/meteroid/internal/config"
	ierr "github.com/meteroid-oss/meteroid/internal/errors"
	"github.com/meteroid-oss/meteroid/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore is the narrow storage interface the Invoice Builder (§4.4)
// uses to persist rendered invoice PDFs and retrieve them for delivery.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

// s3ObjectStore is the ObjectStore backed by AWS S3, grounded on the
// teacher's internal/config/aws.go client construction.
type s3ObjectStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	keyPrefix     string
	presignExpiry time.Duration
	logger        *logger.Logger
}

func NewS3ObjectStore(cfg *awsconfig.Configuration, log *logger.Logger) (ObjectStore, error) {
	ctx := context.Background()
	awsCfg, err := awsconfig.LoadAwsConfig(ctx)
	if err != nil {
		return nil, ierr.Wrap(err, "ErrSystem", "failed to load AWS config")
	}

	client, err := awsconfig.NewS3Client(ctx, awsCfg)
	if err != nil {
		return nil, ierr.Wrap(err, "ErrSystem", "failed to create S3 client")
	}

	expiry, err := time.ParseDuration(cfg.S3.InvoiceBucketConfig.PresignExpiryDuration)
	if err != nil {
		expiry = 15 * time.Minute
	}

	return &s3ObjectStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.S3.InvoiceBucketConfig.Bucket,
		keyPrefix:     cfg.S3.InvoiceBucketConfig.KeyPrefix,
		presignExpiry: expiry,
		logger:        log,
	}, nil
}

func (s *s3ObjectStore) fullKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + "/" + key
}

func (s *s3ObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.fullKey(key)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return ierr.NewError("failed to upload object to S3").
			WithHint("check bucket permissions and region configuration").
			Mark(ierr.ErrSystem)
	}
	return nil
}

func (s *s3ObjectStore) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.fullKey(key)),
	}, s3.WithPresignExpires(s.presignExpiry))
	if err != nil {
		return "", ierr.NewError("failed to presign S3 object URL").
			Mark(ierr.ErrSystem)
	}
	return req.URL, nil
}
