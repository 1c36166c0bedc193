package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/config"
	"blog-platform/internal/domain"
	"blog-platform/internal/service"
)

type assetDirs struct {
	store  *service.AssetStore
	cover  string
	body   string
	avatar string
	tmp    string
}

func newAssetDirs(t *testing.T) assetDirs {
	t.Helper()
	root := t.TempDir()
	dirs := assetDirs{
		cover:  filepath.Join(root, "articles"),
		body:   filepath.Join(root, "blogimgs"),
		avatar: filepath.Join(root, "avatars"),
		tmp:    filepath.Join(root, "tmp"),
	}
	require.NoError(t, os.MkdirAll(dirs.tmp, 0o755))

	store, err := service.NewAssetStore(dirs.cover, dirs.body, dirs.avatar, config.DefaultUploadMaxBytes)
	require.NoError(t, err)
	dirs.store = store
	return dirs
}

func stageUpload(t *testing.T, dirs assetDirs, name string, size int) domain.Upload {
	t.Helper()
	path := filepath.Join(dirs.tmp, "staged-"+name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return domain.Upload{
		TempPath:     path,
		OriginalName: name,
		MIMEType:     "image/png",
		SizeBytes:    int64(size),
	}
}

func TestAssetStore_AcceptCoverImage(t *testing.T) {
	t.Run("moves the staged file into cover storage", func(t *testing.T) {
		dirs := newAssetDirs(t)
		upload := stageUpload(t, dirs, "photo.png", 128)

		filename, err := dirs.store.AcceptCoverImage(upload)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(filename, "a"), "cover prefix, got %q", filename)
		assert.True(t, strings.HasSuffix(filename, "-photo.png"), "original name preserved, got %q", filename)
		assert.FileExists(t, filepath.Join(dirs.cover, filename))
		assert.NoFileExists(t, upload.TempPath)
	})

	t.Run("rejects files over the size limit", func(t *testing.T) {
		dirs := newAssetDirs(t)
		upload := stageUpload(t, dirs, "photo.png", 16)
		upload.SizeBytes = config.DefaultUploadMaxBytes + 1

		_, err := dirs.store.AcceptCoverImage(upload)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
		assert.FileExists(t, upload.TempPath, "rejected upload stays staged")
	})

	t.Run("rejects disallowed extensions", func(t *testing.T) {
		dirs := newAssetDirs(t)
		upload := stageUpload(t, dirs, "notes.txt", 16)

		_, err := dirs.store.AcceptCoverImage(upload)
		assert.ErrorIs(t, err, domain.ErrInvalidFileType)
	})

	t.Run("rejects mismatched MIME type", func(t *testing.T) {
		dirs := newAssetDirs(t)
		upload := stageUpload(t, dirs, "photo.png", 16)
		upload.MIMEType = "application/octet-stream"

		_, err := dirs.store.AcceptCoverImage(upload)
		assert.ErrorIs(t, err, domain.ErrInvalidFileType)
	})

	t.Run("extension check is case insensitive", func(t *testing.T) {
		dirs := newAssetDirs(t)
		upload := stageUpload(t, dirs, "PHOTO.PNG", 16)

		_, err := dirs.store.AcceptCoverImage(upload)
		assert.NoError(t, err)
	})
}

func TestAssetStore_AcceptAvatar(t *testing.T) {
	dirs := newAssetDirs(t)
	upload := stageUpload(t, dirs, "me.jpg", 64)
	upload.MIMEType = "image/jpeg"

	filename, err := dirs.store.AcceptAvatar(upload)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "ava-"), "avatar prefix, got %q", filename)
	assert.FileExists(t, filepath.Join(dirs.avatar, filename))
}

func TestAssetStore_Release(t *testing.T) {
	t.Run("deletes a stored cover file", func(t *testing.T) {
		dirs := newAssetDirs(t)
		filename, err := dirs.store.AcceptCoverImage(stageUpload(t, dirs, "photo.png", 32))
		require.NoError(t, err)

		require.NoError(t, dirs.store.ReleaseCoverImage(filename))
		assert.NoFileExists(t, filepath.Join(dirs.cover, filename))
	})

	t.Run("absent file is not an error", func(t *testing.T) {
		dirs := newAssetDirs(t)
		assert.NoError(t, dirs.store.ReleaseCoverImage("a123-gone.png"))
	})

	t.Run("empty filename is a no-op", func(t *testing.T) {
		dirs := newAssetDirs(t)
		assert.NoError(t, dirs.store.ReleaseCoverImage(""))
	})

	t.Run("release is idempotent", func(t *testing.T) {
		dirs := newAssetDirs(t)
		filename, err := dirs.store.AcceptAvatar(stageUpload(t, dirs, "me.png", 32))
		require.NoError(t, err)

		require.NoError(t, dirs.store.ReleaseAvatar(filename))
		assert.NoError(t, dirs.store.ReleaseAvatar(filename))
	})
}

func TestAssetStore_ReconcileBodyImages(t *testing.T) {
	acceptBody := func(t *testing.T, dirs assetDirs, name string) string {
		t.Helper()
		filename, err := dirs.store.AcceptBodyImage(stageUpload(t, dirs, name, 32))
		require.NoError(t, err)
		return filename
	}

	t.Run("deletes exactly the files dropped from the body", func(t *testing.T) {
		dirs := newAssetDirs(t)
		f1 := acceptBody(t, dirs, "one.png")
		f2 := acceptBody(t, dirs, "two.png")
		f3 := acceptBody(t, dirs, "three.png")

		extraneous, err := dirs.store.ReconcileBodyImages([]string{f1, f2, f3}, []string{f2})
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{f1, f3}, extraneous)
		assert.NoFileExists(t, filepath.Join(dirs.body, f1))
		assert.FileExists(t, filepath.Join(dirs.body, f2))
		assert.NoFileExists(t, filepath.Join(dirs.body, f3))
	})

	t.Run("empty retained list drops everything", func(t *testing.T) {
		dirs := newAssetDirs(t)
		f1 := acceptBody(t, dirs, "one.png")
		f2 := acceptBody(t, dirs, "two.png")

		extraneous, err := dirs.store.ReconcileBodyImages([]string{f1, f2}, nil)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{f1, f2}, extraneous)
		assert.NoFileExists(t, filepath.Join(dirs.body, f1))
		assert.NoFileExists(t, filepath.Join(dirs.body, f2))
	})

	t.Run("retained names outside current are ignored", func(t *testing.T) {
		dirs := newAssetDirs(t)
		f1 := acceptBody(t, dirs, "one.png")

		extraneous, err := dirs.store.ReconcileBodyImages([]string{f1}, []string{f1, "b999-unknown.png"})
		require.NoError(t, err)

		assert.Empty(t, extraneous)
		assert.FileExists(t, filepath.Join(dirs.body, f1))
	})

	t.Run("already deleted current files do not fail the pass", func(t *testing.T) {
		dirs := newAssetDirs(t)
		f1 := acceptBody(t, dirs, "one.png")
		require.NoError(t, os.Remove(filepath.Join(dirs.body, f1)))

		extraneous, err := dirs.store.ReconcileBodyImages([]string{f1}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{f1}, extraneous)
	})
}

func TestAssetStore_ReleaseBodyImages(t *testing.T) {
	dirs := newAssetDirs(t)
	f1, err := dirs.store.AcceptBodyImage(stageUpload(t, dirs, "one.png", 32))
	require.NoError(t, err)

	// Mixing present and absent names must still delete the present ones.
	require.NoError(t, dirs.store.ReleaseBodyImages([]string{"b1-missing.png", f1}))
	assert.NoFileExists(t, filepath.Join(dirs.body, f1))
}
