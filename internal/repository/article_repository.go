package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-platform/internal/domain"
)

const uniqueViolationCode = "23505"

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

const articleColumns = `a.id, a.slug, a.title, a.description, a.body, a.image, a.imgs,
	a.tag_list, a.upvotes_count, a.downvotes_count, a.comment_ids, a.author_id,
	a.created_at, a.updated_at,
	u.id, u.username, u.email, u.bio, u.image, u.created_at, u.updated_at`

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	var author domain.User
	if err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.Image, &a.Imgs,
		&a.TagList, &a.UpvotesCount, &a.DownvotesCount, &a.CommentIDs, &a.AuthorID,
		&a.CreatedAt, &a.UpdatedAt,
		&author.ID, &author.Username, &author.Email, &author.Bio, &author.Image,
		&author.CreatedAt, &author.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Author = &author
	return &a, nil
}

// Create inserts a new article. A slug collision is reported as
// domain.ErrDuplicateSlug so the caller can regenerate and retry.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, slug, title, description, body, image, imgs, tag_list,
			upvotes_count, downvotes_count, comment_ids, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, '{}'), COALESCE($8, '{}'), 0, 0, '{}', $9, NOW(), NOW())
	`, article.ID, article.Slug, article.Title, article.Description, article.Body,
		article.Image, article.Imgs, article.TagList, article.AuthorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetBySlug fetches an article with its author by slug.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM articles a JOIN users u ON u.id = a.author_id
		WHERE a.slug = $1
	`, articleColumns), slug)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	return article, nil
}

// GetByID fetches an article with its author by ID.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM articles a JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`, articleColumns), id)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get article by id: %w", err)
	}
	return article, nil
}

// Update saves the article's mutable fields. Vote counters and comment
// references have dedicated methods and are not written here.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, description = $3, body = $4, image = $5,
			imgs = COALESCE($6, '{}'), tag_list = COALESCE($7, '{}'), updated_at = NOW()
		WHERE id = $1
	`, article.ID, article.Title, article.Description, article.Body,
		article.Image, article.Imgs, article.TagList)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the article row. Vote references and comments must already
// be gone; the foreign keys restrict deletion otherwise.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns articles matching the filter in reverse chronological order,
// plus the total count for the same predicate.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	where, args := buildListPredicate(filter)

	countQuery := "SELECT COUNT(*) FROM articles a JOIN users u ON u.id = a.author_id" + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM articles a JOIN users u ON u.id = a.author_id%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d`, articleColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read articles: %w", err)
	}

	return articles, total, nil
}

func buildListPredicate(filter domain.ArticleFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Tag != "" {
		add("$%d = ANY(a.tag_list)", filter.Tag)
	}
	if filter.Author != "" {
		add("u.username = $%d", filter.Author)
	}
	if filter.UpvotedBy != "" {
		add(`a.id IN (
			SELECT v.article_id FROM article_upvotes v
			JOIN users vu ON vu.id = v.user_id WHERE vu.username = $%d)`, filter.UpvotedBy)
	}
	if filter.DownvotedBy != "" {
		add(`a.id IN (
			SELECT v.article_id FROM article_downvotes v
			JOIN users vu ON vu.id = v.user_id WHERE vu.username = $%d)`, filter.DownvotedBy)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// SetUpvotesCount persists a recomputed upvote counter.
func (r *PostgresArticleRepository) SetUpvotesCount(ctx context.Context, articleID string, count int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET upvotes_count = $2, updated_at = NOW() WHERE id = $1
	`, articleID, count)
	if err != nil {
		return fmt.Errorf("set upvotes count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetDownvotesCount persists a recomputed downvote counter.
func (r *PostgresArticleRepository) SetDownvotesCount(ctx context.Context, articleID string, count int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET downvotes_count = $2, updated_at = NOW() WHERE id = $1
	`, articleID, count)
	if err != nil {
		return fmt.Errorf("set downvotes count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendCommentID records a comment reference on the owning article.
func (r *PostgresArticleRepository) AppendCommentID(ctx context.Context, articleID, commentID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET comment_ids = array_append(comment_ids, $2), updated_at = NOW()
		WHERE id = $1
	`, articleID, commentID)
	if err != nil {
		return fmt.Errorf("append comment id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveCommentID drops a comment reference from the owning article.
func (r *PostgresArticleRepository) RemoveCommentID(ctx context.Context, articleID, commentID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET comment_ids = array_remove(comment_ids, $2), updated_at = NOW()
		WHERE id = $1
	`, articleID, commentID)
	if err != nil {
		return fmt.Errorf("remove comment id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DistinctTags returns every tag used by any article, sorted.
func (r *PostgresArticleRepository) DistinctTags(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT unnest(tag_list) AS tag FROM articles ORDER BY tag
	`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
