package printing

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	objects map[string][]byte
}

func newFakeS3Client() *fakeS3Client {
	return &fakeS3Client{objects: make(map[string][]byte)}
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(data)))}, nil
}

func (f *fakeS3Client) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_StoreAndGet(t *testing.T) {
	client := newFakeS3Client()
	storage := NewS3StorageWithClient(client, &S3StorageConfig{
		Bucket:    "bizrecords-documents",
		KeyPrefix: "purchase-orders",
	})

	companyID := uuid.New()
	result, err := storage.Store(context.Background(), &StoreRequest{
		CompanyID: companyID,
		FileName:  "PO_PO-WASCO-2026-27-0001.pdf",
		PDFData:   []byte("%PDF-1.4 content"),
	})
	require.NoError(t, err)
	assert.Equal(t, companyID.String()+"/PO_PO-WASCO-2026-27-0001.pdf", result.Path)

	// stored under the configured prefix
	_, ok := client.objects["purchase-orders/"+result.Path]
	assert.True(t, ok)

	reader, err := storage.Get(context.Background(), result.Path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 content"), got)
}

func TestS3Storage_GetMissing(t *testing.T) {
	storage := NewS3StorageWithClient(newFakeS3Client(), &S3StorageConfig{Bucket: "b"})

	_, err := storage.Get(context.Background(), "nope/missing.pdf")
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeStorageFailed, renderErr.Code)
}

func TestS3Storage_Delete(t *testing.T) {
	client := newFakeS3Client()
	storage := NewS3StorageWithClient(client, &S3StorageConfig{Bucket: "b"})

	companyID := uuid.New()
	result, err := storage.Store(context.Background(), &StoreRequest{
		CompanyID: companyID,
		FileName:  "PO_X.pdf",
		PDFData:   []byte("data"),
	})
	require.NoError(t, err)

	require.NoError(t, storage.Delete(context.Background(), result.Path))
	_, err = storage.Get(context.Background(), result.Path)
	require.Error(t, err)
}

func TestS3Storage_StoreValidation(t *testing.T) {
	storage := NewS3StorageWithClient(newFakeS3Client(), &S3StorageConfig{Bucket: "b"})

	_, err := storage.Store(context.Background(), &StoreRequest{
		CompanyID: uuid.New(),
		FileName:  "../escape.pdf",
		PDFData:   []byte("x"),
	})
	require.Error(t, err)

	_, err = storage.Store(context.Background(), nil)
	require.Error(t, err)
}
