package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/repository"
)

func seedComment(t *testing.T, tdb *TestDB, article *domain.Article, author *domain.User, body string) *domain.ArticleComment {
	t.Helper()
	comment := &domain.ArticleComment{
		ID:        uuid.New().String(),
		Body:      body,
		ArticleID: article.ID,
		AuthorID:  author.ID,
	}
	require.NoError(t, repository.NewPostgresCommentRepository(tdb.Pool).Create(context.Background(), comment))
	return comment
}

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	commentRepo := repository.NewPostgresCommentRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and fetch with author", func(t *testing.T) {
		testDB.TruncateTables(t, "article_comments", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		article := seedArticle(t, testDB, jane, "discussed")
		comment := seedComment(t, testDB, article, joe, "Nice post")

		got, err := commentRepo.GetByID(ctx, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nice post", got.Body)
		assert.Equal(t, article.ID, got.ArticleID)
		require.NotNil(t, got.Author)
		assert.Equal(t, "joe", got.Author.Username)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("unknown ID yields ErrNotFound", func(t *testing.T) {
		_, err := commentRepo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list returns the article's comments newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "article_comments", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		article := seedArticle(t, testDB, jane, "discussed")
		other := seedArticle(t, testDB, jane, "quiet")

		older := seedComment(t, testDB, article, joe, "first")
		time.Sleep(10 * time.Millisecond)
		newer := seedComment(t, testDB, article, joe, "second")
		seedComment(t, testDB, other, joe, "elsewhere")

		comments, err := commentRepo.ListByArticle(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, newer.ID, comments[0].ID)
		assert.Equal(t, older.ID, comments[1].ID)
	})

	t.Run("delete removes a single comment", func(t *testing.T) {
		testDB.TruncateTables(t, "article_comments", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		article := seedArticle(t, testDB, jane, "discussed")
		comment := seedComment(t, testDB, article, jane, "bye")

		require.NoError(t, commentRepo.Delete(ctx, comment.ID))
		_, err := commentRepo.GetByID(ctx, comment.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("DeleteByArticle clears only that article's comments", func(t *testing.T) {
		testDB.TruncateTables(t, "article_comments", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		doomed := seedArticle(t, testDB, jane, "doomed")
		survivor := seedArticle(t, testDB, jane, "survivor")
		seedComment(t, testDB, doomed, jane, "one")
		seedComment(t, testDB, doomed, jane, "two")
		kept := seedComment(t, testDB, survivor, jane, "keep me")

		require.NoError(t, commentRepo.DeleteByArticle(ctx, doomed.ID))

		comments, err := commentRepo.ListByArticle(ctx, doomed.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)

		comments, err = commentRepo.ListByArticle(ctx, survivor.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, kept.ID, comments[0].ID)
	})
}
