package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresVoteRepository implements VoteRepository over the article_upvotes
// and article_downvotes tables. Each row is one (user, article) membership;
// the tables together form the authoritative vote ledger.
type PostgresVoteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVoteRepository creates a new PostgresVoteRepository.
func NewPostgresVoteRepository(pool *pgxpool.Pool) *PostgresVoteRepository {
	return &PostgresVoteRepository{pool: pool}
}

func voteTable(up bool) string {
	if up {
		return "article_upvotes"
	}
	return "article_downvotes"
}

func (r *PostgresVoteRepository) has(ctx context.Context, up bool, userID, articleID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND article_id = $2)`,
		voteTable(up)), userID, articleID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check vote: %w", err)
	}
	return exists, nil
}

// HasUpvote reports whether the article is in the user's upvote set.
func (r *PostgresVoteRepository) HasUpvote(ctx context.Context, userID, articleID string) (bool, error) {
	return r.has(ctx, true, userID, articleID)
}

// HasDownvote reports whether the article is in the user's downvote set.
func (r *PostgresVoteRepository) HasDownvote(ctx context.Context, userID, articleID string) (bool, error) {
	return r.has(ctx, false, userID, articleID)
}

func (r *PostgresVoteRepository) add(ctx context.Context, up bool, userID, articleID string) error {
	// ON CONFLICT keeps repeated adds idempotent at the storage level; the
	// precondition check lives in the service.
	_, err := r.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (user_id, article_id, created_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, article_id) DO NOTHING`,
		voteTable(up)), userID, articleID)
	if err != nil {
		return fmt.Errorf("add vote: %w", err)
	}
	return nil
}

// AddUpvote adds the article to the user's upvote set.
func (r *PostgresVoteRepository) AddUpvote(ctx context.Context, userID, articleID string) error {
	return r.add(ctx, true, userID, articleID)
}

// AddDownvote adds the article to the user's downvote set.
func (r *PostgresVoteRepository) AddDownvote(ctx context.Context, userID, articleID string) error {
	return r.add(ctx, false, userID, articleID)
}

func (r *PostgresVoteRepository) remove(ctx context.Context, up bool, userID, articleID string) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE user_id = $1 AND article_id = $2`,
		voteTable(up)), userID, articleID)
	if err != nil {
		return fmt.Errorf("remove vote: %w", err)
	}
	return nil
}

// RemoveUpvote removes the article from the user's upvote set. Removing an
// absent membership is a no-op.
func (r *PostgresVoteRepository) RemoveUpvote(ctx context.Context, userID, articleID string) error {
	return r.remove(ctx, true, userID, articleID)
}

// RemoveDownvote removes the article from the user's downvote set.
func (r *PostgresVoteRepository) RemoveDownvote(ctx context.Context, userID, articleID string) error {
	return r.remove(ctx, false, userID, articleID)
}

func (r *PostgresVoteRepository) count(ctx context.Context, up bool, articleID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT COUNT(*) FROM %s WHERE article_id = $1`,
		voteTable(up)), articleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return count, nil
}

// CountUpvotes counts the users whose upvote set contains the article.
func (r *PostgresVoteRepository) CountUpvotes(ctx context.Context, articleID string) (int, error) {
	return r.count(ctx, true, articleID)
}

// CountDownvotes counts the users whose downvote set contains the article.
func (r *PostgresVoteRepository) CountDownvotes(ctx context.Context, articleID string) (int, error) {
	return r.count(ctx, false, articleID)
}

func (r *PostgresVoteRepository) votedIDs(ctx context.Context, up bool, userID string, articleIDs []string) ([]string, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT article_id FROM %s WHERE user_id = $1 AND article_id = ANY($2)`,
		voteTable(up)), userID, articleIDs)
	if err != nil {
		return nil, fmt.Errorf("query voted articles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan article id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpvotedArticleIDs filters articleIDs down to those in the user's upvote set.
func (r *PostgresVoteRepository) UpvotedArticleIDs(ctx context.Context, userID string, articleIDs []string) ([]string, error) {
	return r.votedIDs(ctx, true, userID, articleIDs)
}

// DownvotedArticleIDs filters articleIDs down to those in the user's downvote set.
func (r *PostgresVoteRepository) DownvotedArticleIDs(ctx context.Context, userID string, articleIDs []string) ([]string, error) {
	return r.votedIDs(ctx, false, userID, articleIDs)
}

// DeleteByArticle removes the article from every user's vote sets, both
// directions. Used by the article deletion sequence.
func (r *PostgresVoteRepository) DeleteByArticle(ctx context.Context, articleID string) error {
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM article_upvotes WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("delete upvotes for article: %w", err)
	}
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM article_downvotes WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("delete downvotes for article: %w", err)
	}
	return nil
}
