package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadResume stores a candidate resume
	UploadResume(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// UploadCompanyDocument stores a verification document (business proof, id proof)
	UploadCompanyDocument(ctx context.Context, recruiterID string, file io.Reader, filename string, documentType string) (string, error)

	// UploadCompanyLogo stores a company logo image
	UploadCompanyLogo(ctx context.Context, recruiterID string, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func validateExt(filename string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}
	return "", fmt.Errorf("invalid file type %q: only %s allowed", ext, strings.Join(allowed, ", "))
}

// UploadResume stores a candidate resume under a unique name
func (s *fileServiceImpl) UploadResume(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext, err := validateExt(filename, []string{".pdf", ".doc", ".docx"})
	if err != nil {
		return "", err
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", userID, uniqueID, ext)
	path := filepath.Join("resumes", userID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentTypes[ext])
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return uploadedPath, nil
}

// UploadCompanyDocument stores a verification document
func (s *fileServiceImpl) UploadCompanyDocument(ctx context.Context, recruiterID string, file io.Reader, filename string, documentType string) (string, error) {
	ext, err := validateExt(filename, []string{".pdf", ".jpg", ".jpeg", ".png"})
	if err != nil {
		return "", err
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", documentType, uniqueID, ext)
	path := filepath.Join("company-documents", recruiterID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentTypes[ext])
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return uploadedPath, nil
}

// UploadCompanyLogo stores a company logo image
func (s *fileServiceImpl) UploadCompanyLogo(ctx context.Context, recruiterID string, file io.Reader, filename string) (string, error) {
	ext, err := validateExt(filename, []string{".jpg", ".jpeg", ".png"})
	if err != nil {
		return "", err
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("logo-%s%s", uniqueID, ext)
	path := filepath.Join("company-logos", recruiterID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentTypes[ext])
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile removes a file from storage
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if err := s.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFileURL generates an access URL for a stored file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	url, err := s.storage.GetURL(ctx, path, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to get file URL: %w", err)
	}
	return url, nil
}
