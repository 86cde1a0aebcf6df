package printing

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreRequest contains the parameters for archiving a rendered document
type StoreRequest struct {
	// CompanyID scopes the archive per company
	CompanyID uuid.UUID
	// FileName is the document file name, e.g. PO_PO-WASCO-2026-27-0001.pdf
	FileName string
	// PDFData is the raw PDF content
	PDFData []byte
}

// StoreResult contains the result of archiving a document
type StoreResult struct {
	// Path is the storage path relative to the backend's base
	Path string
	// Size is the file size in bytes
	Size int64
}

// DocumentStorage archives rendered PDFs and serves them back
type DocumentStorage interface {
	// Store saves a PDF and returns its storage path
	Store(ctx context.Context, req *StoreRequest) (*StoreResult, error)
	// Get retrieves a PDF by its storage path
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes a stored PDF
	Delete(ctx context.Context, path string) error
}

// FileSystemStorageConfig contains configuration for file system storage
type FileSystemStorageConfig struct {
	// BasePath is the root directory for the archive
	BasePath string
	// Logger for operations
	Logger *zap.Logger
}

// FileSystemStorage archives PDFs on the local file system under
// {base}/{company_id}/{file_name}.
type FileSystemStorage struct {
	basePath string
	logger   *zap.Logger
}

// NewFileSystemStorage creates a file system based document storage
func NewFileSystemStorage(config *FileSystemStorageConfig) (*FileSystemStorage, error) {
	if config == nil {
		config = &FileSystemStorageConfig{}
	}
	basePath := config.BasePath
	if basePath == "" {
		basePath = "/data/documents"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed,
			fmt.Sprintf("failed to create storage directory: %s", basePath), err)
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSystemStorage{basePath: basePath, logger: logger}, nil
}

// Store saves a PDF under the company's archive directory
func (s *FileSystemStorage) Store(ctx context.Context, req *StoreRequest) (*StoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "operation cancelled", err)
	}
	if req == nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "store request is nil", nil)
	}
	if req.CompanyID == uuid.Nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "company ID is required", nil)
	}
	if err := validFileName(req.FileName); err != nil {
		return nil, err
	}
	if len(req.PDFData) == 0 {
		return nil, NewRenderError(ErrCodeStorageFailed, "PDF data is empty", nil)
	}

	dirPath := filepath.Join(s.basePath, req.CompanyID.String())
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to create archive directory", err)
	}

	filePath := filepath.Join(dirPath, req.FileName)
	if err := os.WriteFile(filePath, req.PDFData, 0o644); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to write PDF file", err)
	}

	relativePath := filepath.Join(req.CompanyID.String(), req.FileName)
	s.logger.Info("PDF archived",
		zap.String("path", relativePath),
		zap.Int("size", len(req.PDFData)))

	return &StoreResult{
		Path: relativePath,
		Size: int64(len(req.PDFData)),
	}, nil
}

// Get retrieves a PDF by its relative path
func (s *FileSystemStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "operation cancelled", err)
	}
	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewRenderError(ErrCodeStorageFailed, "PDF not found", err)
		}
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to open PDF file", err)
	}
	return file, nil
}

// Delete removes a stored PDF. A missing file is not an error.
func (s *FileSystemStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return NewRenderError(ErrCodeStorageFailed, "operation cancelled", err)
	}
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return NewRenderError(ErrCodeStorageFailed, "failed to delete PDF file", err)
	}
	s.logger.Info("PDF deleted", zap.String("path", path))
	return nil
}

// resolve maps a relative path to an absolute path under the base,
// rejecting traversal attempts.
func (s *FileSystemStorage) resolve(path string) (string, error) {
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) || containsDotDot(path) {
		s.logger.Warn("blocked path outside archive", zap.String("path", path))
		return "", NewRenderError(ErrCodeStorageFailed, "invalid path", nil)
	}

	fullPath := filepath.Join(s.basePath, cleanPath)
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", NewRenderError(ErrCodeStorageFailed, "failed to resolve base path", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", NewRenderError(ErrCodeStorageFailed, "failed to resolve file path", err)
	}
	if absPath != absBase && !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		s.logger.Warn("blocked path escape attempt", zap.String("path", path))
		return "", NewRenderError(ErrCodeStorageFailed, "invalid path", nil)
	}
	return fullPath, nil
}

func validFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewRenderError(ErrCodeStorageFailed, "file name is required", nil)
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return NewRenderError(ErrCodeStorageFailed, "invalid file name", nil)
	}
	return nil
}

func containsDotDot(path string) bool {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	return slices.Contains(parts, "..")
}

var _ DocumentStorage = (*FileSystemStorage)(nil)
