package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a new comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.ArticleComment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO article_comments (id, body, article_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`, comment.ID, comment.Body, comment.ArticleID, comment.AuthorID)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID fetches a comment with its author.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.ArticleComment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.body, c.article_id, c.author_id, c.created_at, c.updated_at,
			u.id, u.username, u.email, u.bio, u.image, u.created_at, u.updated_at
		FROM article_comments c JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, id)

	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get comment by id: %w", err)
	}
	return comment, nil
}

func scanComment(row pgx.Row) (*domain.ArticleComment, error) {
	var c domain.ArticleComment
	var author domain.User
	if err := row.Scan(
		&c.ID, &c.Body, &c.ArticleID, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
		&author.ID, &author.Username, &author.Email, &author.Bio, &author.Image,
		&author.CreatedAt, &author.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Author = &author
	return &c, nil
}

// Delete removes a single comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM article_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByArticle removes every comment whose back-reference equals the
// article's ID. Used by the article deletion cascade only.
func (r *PostgresCommentRepository) DeleteByArticle(ctx context.Context, articleID string) error {
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM article_comments WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("delete comments for article: %w", err)
	}
	return nil
}

// ListByArticle returns an article's comments with authors, newest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.ArticleComment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.body, c.article_id, c.author_id, c.created_at, c.updated_at,
			u.id, u.username, u.email, u.bio, u.image, u.created_at, u.updated_at
		FROM article_comments c JOIN users u ON u.id = c.author_id
		WHERE c.article_id = $1
		ORDER BY c.created_at DESC
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.ArticleComment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}
