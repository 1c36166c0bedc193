package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/repository"
)

func TestPostgresVoteRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	voteRepo := repository.NewPostgresVoteRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("add and query an upvote", func(t *testing.T) {
		testDB.TruncateTables(t, "article_upvotes", "article_downvotes", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		article := seedArticle(t, testDB, jane, "voted-on")

		has, err := voteRepo.HasUpvote(ctx, joe.ID, article.ID)
		require.NoError(t, err)
		assert.False(t, has)

		require.NoError(t, voteRepo.AddUpvote(ctx, joe.ID, article.ID))

		has, err = voteRepo.HasUpvote(ctx, joe.ID, article.ID)
		require.NoError(t, err)
		assert.True(t, has)

		has, err = voteRepo.HasDownvote(ctx, joe.ID, article.ID)
		require.NoError(t, err)
		assert.False(t, has, "upvote ledger is separate from the downvote ledger")
	})

	t.Run("adding the same vote twice keeps a single row", func(t *testing.T) {
		testDB.TruncateTables(t, "article_upvotes", "article_downvotes", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		article := seedArticle(t, testDB, jane, "voted-on")

		require.NoError(t, voteRepo.AddUpvote(ctx, joe.ID, article.ID))
		require.NoError(t, voteRepo.AddUpvote(ctx, joe.ID, article.ID))

		count, err := voteRepo.CountUpvotes(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("counts are per article and per side", func(t *testing.T) {
		testDB.TruncateTables(t, "article_upvotes", "article_downvotes", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		max := seedUser(t, testDB, "max")
		first := seedArticle(t, testDB, jane, "first")
		second := seedArticle(t, testDB, jane, "second")

		require.NoError(t, voteRepo.AddUpvote(ctx, joe.ID, first.ID))
		require.NoError(t, voteRepo.AddUpvote(ctx, max.ID, first.ID))
		require.NoError(t, voteRepo.AddDownvote(ctx, joe.ID, second.ID))

		up, err := voteRepo.CountUpvotes(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, up)

		up, err = voteRepo.CountUpvotes(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, up)

		down, err := voteRepo.CountDownvotes(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, down)
	})

	t.Run("removing a vote empties the ledger", func(t *testing.T) {
		testDB.TruncateTables(t, "article_upvotes", "article_downvotes", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		article := seedArticle(t, testDB, jane, "voted-on")

		require.NoError(t, voteRepo.AddDownvote(ctx, joe.ID, article.ID))
		require.NoError(t, voteRepo.RemoveDownvote(ctx, joe.ID, article.ID))

		has, err := voteRepo.HasDownvote(ctx, joe.ID, article.ID)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("voted IDs filter the supplied set", func(t *testing.T) {
		testDB.TruncateTables(t, "article_upvotes", "article_downvotes", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		liked := seedArticle(t, testDB, jane, "liked")
		disliked := seedArticle(t, testDB, jane, "disliked")
		ignored := seedArticle(t, testDB, jane, "ignored")

		require.NoError(t, voteRepo.AddUpvote(ctx, joe.ID, liked.ID))
		require.NoError(t, voteRepo.AddDownvote(ctx, joe.ID, disliked.ID))

		all := []string{liked.ID, disliked.ID, ignored.ID}

		upIDs, err := voteRepo.UpvotedArticleIDs(ctx, joe.ID, all)
		require.NoError(t, err)
		assert.Equal(t, []string{liked.ID}, upIDs)

		downIDs, err := voteRepo.DownvotedArticleIDs(ctx, joe.ID, all)
		require.NoError(t, err)
		assert.Equal(t, []string{disliked.ID}, downIDs)
	})

	t.Run("empty ID set short-circuits", func(t *testing.T) {
		testDB.TruncateTables(t, "article_upvotes", "article_downvotes", "articles", "users")
		jane := seedUser(t, testDB, "jane")

		ids, err := voteRepo.UpvotedArticleIDs(ctx, jane.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("DeleteByArticle clears both ledgers", func(t *testing.T) {
		testDB.TruncateTables(t, "article_upvotes", "article_downvotes", "articles", "users")
		jane := seedUser(t, testDB, "jane")
		joe := seedUser(t, testDB, "joe")
		max := seedUser(t, testDB, "max")
		article := seedArticle(t, testDB, jane, "doomed")
		other := seedArticle(t, testDB, jane, "survivor")

		require.NoError(t, voteRepo.AddUpvote(ctx, joe.ID, article.ID))
		require.NoError(t, voteRepo.AddDownvote(ctx, max.ID, article.ID))
		require.NoError(t, voteRepo.AddUpvote(ctx, joe.ID, other.ID))

		require.NoError(t, voteRepo.DeleteByArticle(ctx, article.ID))

		up, err := voteRepo.CountUpvotes(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, up)

		down, err := voteRepo.CountDownvotes(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, down)

		up, err = voteRepo.CountUpvotes(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, up, "other articles keep their votes")
	})
}
