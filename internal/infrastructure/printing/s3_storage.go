package printing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// S3StorageConfig contains configuration for the S3 archive backend
type S3StorageConfig struct {
	// Bucket is the target S3 bucket
	Bucket string
	// Region is the AWS region
	Region string
	// Endpoint overrides the S3 endpoint, for MinIO and compatibles
	Endpoint string
	// KeyPrefix is prepended to every object key
	KeyPrefix string
	// Logger for operations
	Logger *zap.Logger
}

// s3Client is the S3 API subset the storage uses, extracted so tests
// can substitute a fake.
type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage archives PDFs in an S3 compatible bucket under
// {prefix}/{company_id}/{file_name}.
type S3Storage struct {
	client s3Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewS3Storage creates an S3 backed document storage using the default
// AWS credential chain
func NewS3Storage(ctx context.Context, cfg *S3StorageConfig) (*S3Storage, error) {
	if cfg == nil || cfg.Bucket == "" {
		return nil, NewRenderError(ErrCodeStorageFailed, "S3 bucket is required", nil)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to load AWS config", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StorageWithClient(client, cfg), nil
}

// NewS3StorageWithClient creates an S3 storage with a caller supplied client
func NewS3StorageWithClient(client s3Client, cfg *S3StorageConfig) *S3Storage {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3Storage{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.KeyPrefix,
		logger: logger,
	}
}

// Store uploads a PDF to the bucket
func (s *S3Storage) Store(ctx context.Context, req *StoreRequest) (*StoreResult, error) {
	if req == nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "store request is nil", nil)
	}
	if err := validFileName(req.FileName); err != nil {
		return nil, err
	}
	if len(req.PDFData) == 0 {
		return nil, NewRenderError(ErrCodeStorageFailed, "PDF data is empty", nil)
	}

	key := s.objectKey(path.Join(req.CompanyID.String(), req.FileName))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(req.PDFData),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to upload PDF", err)
	}

	relativePath := path.Join(req.CompanyID.String(), req.FileName)
	s.logger.Info("PDF archived to S3",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("size", len(req.PDFData)))

	return &StoreResult{
		Path: relativePath,
		Size: int64(len(req.PDFData)),
	}, nil
}

// Get downloads a PDF by its relative path
func (s *S3Storage) Get(ctx context.Context, relativePath string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(relativePath)),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, NewRenderError(ErrCodeStorageFailed, "PDF not found", err)
		}
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to download PDF", err)
	}
	return out.Body, nil
}

// Delete removes a PDF from the bucket
func (s *S3Storage) Delete(ctx context.Context, relativePath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(relativePath)),
	})
	if err != nil {
		return NewRenderError(ErrCodeStorageFailed, "failed to delete PDF", err)
	}
	return nil
}

func (s *S3Storage) objectKey(relativePath string) string {
	if s.prefix == "" {
		return relativePath
	}
	return path.Join(s.prefix, relativePath)
}

var _ DocumentStorage = (*S3Storage)(nil)
