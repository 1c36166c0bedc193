package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-platform/internal/domain"
)

// formUpload stages at most one uploaded file from the named form field into
// tmpDir and describes it for the asset store. Returns nil when the field is
// absent; policy checks (type, size) happen in the asset store, not here.
func formUpload(c *gin.Context, field, tmpDir string) (*domain.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}

	tmpPath := filepath.Join(tmpDir, uuid.New().String())
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		return nil, fmt.Errorf("stage uploaded file: %w", err)
	}

	return &domain.Upload{
		TempPath:     tmpPath,
		OriginalName: fileHeader.Filename,
		MIMEType:     fileHeader.Header.Get("Content-Type"),
		SizeBytes:    fileHeader.Size,
	}, nil
}
