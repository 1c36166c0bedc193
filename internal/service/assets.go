package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
)

// Storage-name prefixes per asset kind. The millisecond timestamp after the
// prefix keeps concurrent uploads from colliding without any directory lock.
const (
	coverPrefix  = "a"
	bodyPrefix   = "b"
	avatarPrefix = "ava-"
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// AssetStore owns the filesystem side of article and avatar images: it moves
// accepted uploads into permanent storage and deletes files made orphan by
// edits or deletions. It never touches the database; callers persist the
// returned filenames only after the file operation has succeeded.
type AssetStore struct {
	coverDir  string
	bodyDir   string
	avatarDir string
	maxBytes  int64
}

// NewAssetStore creates the storage directories and returns a store backed
// by them.
func NewAssetStore(coverDir, bodyDir, avatarDir string, maxBytes int64) (*AssetStore, error) {
	for _, dir := range []string{coverDir, bodyDir, avatarDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create asset directory: %w", err)
		}
	}
	return &AssetStore{
		coverDir:  coverDir,
		bodyDir:   bodyDir,
		avatarDir: avatarDir,
		maxBytes:  maxBytes,
	}, nil
}

// validate enforces the upload policy before any file or document mutation.
func (s *AssetStore) validate(upload domain.Upload) error {
	if upload.SizeBytes > s.maxBytes {
		return domain.ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(upload.OriginalName))
	if !allowedImageExts[ext] || !allowedImageMIMEs[strings.ToLower(upload.MIMEType)] {
		return domain.ErrInvalidFileType
	}
	return nil
}

func (s *AssetStore) accept(dir, prefix string, upload domain.Upload) (string, error) {
	if err := s.validate(upload); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), filepath.Base(upload.OriginalName))
	if err := os.Rename(upload.TempPath, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("store uploaded file: %w", err)
	}
	return filename, nil
}

// AcceptCoverImage moves an uploaded file into the cover-image storage area
// and returns the stored filename.
func (s *AssetStore) AcceptCoverImage(upload domain.Upload) (string, error) {
	name, err := s.accept(s.coverDir, coverPrefix, upload)
	metrics.ObserveUpload("cover", err)
	return name, err
}

// AcceptBodyImage moves an uploaded file into the body-image storage area
// and returns the stored filename.
func (s *AssetStore) AcceptBodyImage(upload domain.Upload) (string, error) {
	name, err := s.accept(s.bodyDir, bodyPrefix, upload)
	metrics.ObserveUpload("body", err)
	return name, err
}

// AcceptAvatar moves an uploaded file into the avatar storage area and
// returns the stored filename.
func (s *AssetStore) AcceptAvatar(upload domain.Upload) (string, error) {
	name, err := s.accept(s.avatarDir, avatarPrefix, upload)
	metrics.ObserveUpload("avatar", err)
	return name, err
}

// release deletes one stored file. A file that is already absent is logged
// and treated as success; deletes are idempotent.
func (s *AssetStore) release(dir, kind, filename string) error {
	if filename == "" {
		return nil
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			logger.Info("file already absent, nothing to remove",
				slog.String("kind", kind), slog.String("file", filename))
			return nil
		}
		return fmt.Errorf("remove %s file: %w", kind, err)
	}
	metrics.FilesReleasedTotal.WithLabelValues(kind).Inc()
	return nil
}

// ReleaseCoverImage deletes a cover file.
func (s *AssetStore) ReleaseCoverImage(filename string) error {
	return s.release(s.coverDir, "cover", filename)
}

// ReleaseAvatar deletes an avatar file.
func (s *AssetStore) ReleaseAvatar(filename string) error {
	return s.release(s.avatarDir, "avatar", filename)
}

// ReleaseBodyImages deletes a set of body-image files. All deletions are
// attempted even when some fail; absent files are not failures.
func (s *AssetStore) ReleaseBodyImages(filenames []string) error {
	var errs []error
	for _, filename := range filenames {
		if err := s.release(s.bodyDir, "body", filename); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReconcileBodyImages deletes exactly the files in current that are missing
// from retained and returns them. Image upload and article save are separate
// requests; an upload never committed to the saved body must not leak
// storage.
func (s *AssetStore) ReconcileBodyImages(current, retained []string) ([]string, error) {
	kept := make(map[string]bool, len(retained))
	for _, filename := range retained {
		kept[filename] = true
	}

	var extraneous []string
	for _, filename := range current {
		if !kept[filename] {
			extraneous = append(extraneous, filename)
		}
	}

	if err := s.ReleaseBodyImages(extraneous); err != nil {
		return extraneous, err
	}
	return extraneous, nil
}
