package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/mocks"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

type articleServiceFixture struct {
	articleRepo *mocks.MockArticleRepository
	commentRepo *mocks.MockCommentRepository
	voteRepo    *mocks.MockVoteRepository
	dirs        assetDirs
	svc         *service.ArticleService
}

func newArticleServiceFixture(t *testing.T) *articleServiceFixture {
	t.Helper()
	f := &articleServiceFixture{
		articleRepo: mocks.NewMockArticleRepository(t),
		commentRepo: mocks.NewMockCommentRepository(t),
		voteRepo:    mocks.NewMockVoteRepository(t),
		dirs:        newAssetDirs(t),
	}
	f.svc = service.NewArticleService(f.articleRepo, f.commentRepo, f.voteRepo, f.dirs.store, validator.NewValidator())
	return f
}

func TestArticleService_Create(t *testing.T) {
	ctx := context.Background()
	author := &domain.User{ID: "author-1", Username: "jane"}

	t.Run("creates an article with a generated slug", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		var created *domain.Article
		f.articleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(ctx context.Context, article *domain.Article) { created = article }).
			Return(nil)
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, mock.AnythingOfType("string")).
			RunAndReturn(func(ctx context.Context, slug string) (*domain.Article, error) {
				require.Equal(t, created.Slug, slug)
				return created, nil
			})

		article, err := f.svc.Create(ctx, author, service.CreateArticleInput{
			Title: "Hello World",
			Body:  "Body text",
		})

		require.NoError(t, err)
		assert.Regexp(t, `^hello-world-[0-9a-z]{6}$`, article.Slug)
		assert.Equal(t, "author-1", article.AuthorID)
		assert.NotEmpty(t, article.ID)
		assert.Empty(t, article.Image)
	})

	t.Run("accepts the cover before persisting", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		cover := stageUpload(t, f.dirs, "cover.png", 64)

		f.articleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			RunAndReturn(func(ctx context.Context, article *domain.Article) error {
				// The file must already be in permanent storage when the row
				// is written.
				assert.FileExists(t, filepath.Join(f.dirs.cover, article.Image))
				return nil
			})
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, mock.AnythingOfType("string")).
			Return(&domain.Article{}, nil)

		_, err := f.svc.Create(ctx, author, service.CreateArticleInput{
			Title: "With Cover",
			Body:  "Body",
			Cover: &cover,
		})
		require.NoError(t, err)
	})

	t.Run("retries with a fresh slug on collision", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		var slugs []string

		f.articleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(ctx context.Context, article *domain.Article) { slugs = append(slugs, article.Slug) }).
			Return(domain.ErrDuplicateSlug).Twice()
		f.articleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(ctx context.Context, article *domain.Article) { slugs = append(slugs, article.Slug) }).
			Return(nil).Once()
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, mock.AnythingOfType("string")).
			Return(&domain.Article{}, nil)

		_, err := f.svc.Create(ctx, author, service.CreateArticleInput{Title: "Popular Title", Body: "Body"})

		require.NoError(t, err)
		require.Len(t, slugs, 3)
		assert.NotEqual(t, slugs[0], slugs[1])
		assert.NotEqual(t, slugs[1], slugs[2])
	})

	t.Run("gives up after repeated collisions and rolls back the cover", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		cover := stageUpload(t, f.dirs, "cover.png", 64)

		var storedCover string
		f.articleRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(ctx context.Context, article *domain.Article) { storedCover = article.Image }).
			Return(domain.ErrDuplicateSlug).Times(3)

		_, err := f.svc.Create(ctx, author, service.CreateArticleInput{
			Title: "Popular Title",
			Body:  "Body",
			Cover: &cover,
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
		assert.NoFileExists(t, filepath.Join(f.dirs.cover, storedCover))
	})

	t.Run("rejects an article without a title", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		_, err := f.svc.Create(ctx, author, service.CreateArticleInput{Body: "Body"})
		assert.Error(t, err)
	})
}

func TestArticleService_Update(t *testing.T) {
	ctx := context.Background()

	baseArticle := func() *domain.Article {
		return &domain.Article{
			ID:          "art-1",
			Slug:        "hello-abc123",
			Title:       "Hello",
			Description: "Old description",
			Body:        "Old body",
			Imgs:        []string{},
			AuthorID:    "author-1",
		}
	}

	t.Run("only the author may update", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		_, err := f.svc.Update(ctx, "someone-else", baseArticle(), service.UpdateArticleInput{})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("absent fields stay, present-but-empty fields clear", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		article := baseArticle()
		empty := ""
		newBody := "New body"

		var saved *domain.Article
		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(ctx context.Context, a *domain.Article) { saved = a }).
			Return(nil)
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, "hello-abc123").
			RunAndReturn(func(ctx context.Context, slug string) (*domain.Article, error) { return saved, nil })

		updated, err := f.svc.Update(ctx, "author-1", article, service.UpdateArticleInput{
			Patch: domain.ArticlePatch{Description: &empty, Body: &newBody},
		})

		require.NoError(t, err)
		assert.Equal(t, "Hello", updated.Title)
		assert.Equal(t, "", updated.Description)
		assert.Equal(t, "New body", updated.Body)
	})

	t.Run("cover replacement releases the old file only after the save", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		oldCover, err := f.dirs.store.AcceptCoverImage(stageUpload(t, f.dirs, "old.png", 32))
		require.NoError(t, err)
		article := baseArticle()
		article.Image = oldCover

		newUpload := stageUpload(t, f.dirs, "new.png", 32)

		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			RunAndReturn(func(ctx context.Context, a *domain.Article) error {
				// Both files exist at save time.
				assert.FileExists(t, filepath.Join(f.dirs.cover, oldCover))
				assert.FileExists(t, filepath.Join(f.dirs.cover, a.Image))
				return nil
			})
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, "hello-abc123").
			Return(article, nil)

		updated, err := f.svc.Update(ctx, "author-1", article, service.UpdateArticleInput{Cover: &newUpload})

		require.NoError(t, err)
		assert.NotEqual(t, oldCover, updated.Image)
		assert.NoFileExists(t, filepath.Join(f.dirs.cover, oldCover))
		assert.FileExists(t, filepath.Join(f.dirs.cover, updated.Image))
	})

	t.Run("failed save rolls back the newly accepted cover", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		oldCover, err := f.dirs.store.AcceptCoverImage(stageUpload(t, f.dirs, "old.png", 32))
		require.NoError(t, err)
		article := baseArticle()
		article.Image = oldCover

		newUpload := stageUpload(t, f.dirs, "new.png", 32)
		saveErr := errors.New("save failed")

		var attemptedCover string
		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(ctx context.Context, a *domain.Article) { attemptedCover = a.Image }).
			Return(saveErr)

		_, err = f.svc.Update(ctx, "author-1", article, service.UpdateArticleInput{Cover: &newUpload})

		assert.ErrorIs(t, err, saveErr)
		assert.NoFileExists(t, filepath.Join(f.dirs.cover, attemptedCover))
		assert.FileExists(t, filepath.Join(f.dirs.cover, oldCover), "old cover survives the failed save")
	})

	t.Run("removeImage deletes the cover and clears the reference", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		cover, err := f.dirs.store.AcceptCoverImage(stageUpload(t, f.dirs, "old.png", 32))
		require.NoError(t, err)
		article := baseArticle()
		article.Image = cover

		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, "hello-abc123").
			Return(article, nil)

		updated, err := f.svc.Update(ctx, "author-1", article, service.UpdateArticleInput{RemoveCover: true})

		require.NoError(t, err)
		assert.Empty(t, updated.Image)
		assert.NoFileExists(t, filepath.Join(f.dirs.cover, cover))
	})

	t.Run("reconciles body images against the retained list", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		f1, err := f.dirs.store.AcceptBodyImage(stageUpload(t, f.dirs, "one.png", 32))
		require.NoError(t, err)
		f2, err := f.dirs.store.AcceptBodyImage(stageUpload(t, f.dirs, "two.png", 32))
		require.NoError(t, err)
		article := baseArticle()
		article.Imgs = []string{f1, f2}

		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, "hello-abc123").
			Return(article, nil)

		_, err = f.svc.Update(ctx, "author-1", article, service.UpdateArticleInput{
			RetainedBodyImages: []string{f2},
			RetainedSupplied:   true,
		})

		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(f.dirs.body, f1))
		assert.FileExists(t, filepath.Join(f.dirs.body, f2))
		assert.Equal(t, []string{f2}, article.Imgs)
	})

	t.Run("empty retained list deletes the files but keeps the references", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		f1, err := f.dirs.store.AcceptBodyImage(stageUpload(t, f.dirs, "one.png", 32))
		require.NoError(t, err)
		article := baseArticle()
		article.Imgs = []string{f1}

		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)
		f.articleRepo.EXPECT().
			GetBySlug(mock.Anything, "hello-abc123").
			Return(article, nil)

		_, err = f.svc.Update(ctx, "author-1", article, service.UpdateArticleInput{
			RetainedBodyImages: nil,
			RetainedSupplied:   true,
		})

		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(f.dirs.body, f1))
		assert.Equal(t, []string{f1}, article.Imgs)
	})
}

func TestArticleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("destroys comments, files, votes and the article", func(t *testing.T) {
		f := newArticleServiceFixture(t)

		cover, err := f.dirs.store.AcceptCoverImage(stageUpload(t, f.dirs, "cover.png", 32))
		require.NoError(t, err)
		body1, err := f.dirs.store.AcceptBodyImage(stageUpload(t, f.dirs, "one.png", 32))
		require.NoError(t, err)

		article := &domain.Article{
			ID:       "art-1",
			Slug:     "hello-abc123",
			AuthorID: "author-1",
			Image:    cover,
			Imgs:     []string{body1},
		}

		f.commentRepo.EXPECT().DeleteByArticle(ctx, "art-1").Return(nil)
		f.voteRepo.EXPECT().DeleteByArticle(ctx, "art-1").Return(nil)
		f.articleRepo.EXPECT().Delete(ctx, "art-1").Return(nil)

		require.NoError(t, f.svc.Delete(ctx, "author-1", article))

		assert.NoFileExists(t, filepath.Join(f.dirs.cover, cover))
		assert.NoFileExists(t, filepath.Join(f.dirs.body, body1))
	})

	t.Run("only the author may delete", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		article := &domain.Article{ID: "art-1", AuthorID: "author-1"}

		assert.ErrorIs(t, f.svc.Delete(ctx, "someone-else", article), domain.ErrForbidden)
	})

	t.Run("missing files do not block the delete", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		article := &domain.Article{
			ID:       "art-1",
			AuthorID: "author-1",
			Image:    "a123-long-gone.png",
			Imgs:     []string{"b123-also-gone.png"},
		}

		f.commentRepo.EXPECT().DeleteByArticle(ctx, "art-1").Return(nil)
		f.voteRepo.EXPECT().DeleteByArticle(ctx, "art-1").Return(nil)
		f.articleRepo.EXPECT().Delete(ctx, "art-1").Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, "author-1", article))
	})

	t.Run("comment cascade failure aborts the delete", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		article := &domain.Article{ID: "art-1", AuthorID: "author-1"}
		cascadeErr := errors.New("cascade failed")

		f.commentRepo.EXPECT().DeleteByArticle(ctx, "art-1").Return(cascadeErr)

		assert.ErrorIs(t, f.svc.Delete(ctx, "author-1", article), cascadeErr)
	})
}

func TestArticleService_AttachBodyImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the file and appends the reference", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		article := &domain.Article{ID: "art-1", AuthorID: "author-1", Imgs: []string{}}
		upload := stageUpload(t, f.dirs, "inline.png", 48)

		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		filename, err := f.svc.AttachBodyImage(ctx, article, upload)

		require.NoError(t, err)
		assert.Contains(t, article.Imgs, filename)
		assert.FileExists(t, filepath.Join(f.dirs.body, filename))
	})

	t.Run("failed save rolls the file back", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		article := &domain.Article{ID: "art-1", AuthorID: "author-1", Imgs: []string{}}
		upload := stageUpload(t, f.dirs, "inline.png", 48)
		saveErr := errors.New("save failed")

		var attempted string
		f.articleRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(ctx context.Context, a *domain.Article) { attempted = a.Imgs[len(a.Imgs)-1] }).
			Return(saveErr)

		_, err := f.svc.AttachBodyImage(ctx, article, upload)

		assert.ErrorIs(t, err, saveErr)
		assert.NoFileExists(t, filepath.Join(f.dirs.body, attempted))
	})

	t.Run("policy violation leaves the article untouched", func(t *testing.T) {
		f := newArticleServiceFixture(t)
		article := &domain.Article{ID: "art-1", AuthorID: "author-1", Imgs: []string{}}
		upload := stageUpload(t, f.dirs, "script.exe", 48)

		_, err := f.svc.AttachBodyImage(ctx, article, upload)

		assert.ErrorIs(t, err, domain.ErrInvalidFileType)
		assert.Empty(t, article.Imgs)
	})
}
