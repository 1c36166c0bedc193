package repository

import (
	"context"

	"blog-platform/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	SetUpvotesCount(ctx context.Context, articleID string, count int) error
	SetDownvotesCount(ctx context.Context, articleID string, count int) error
	AppendCommentID(ctx context.Context, articleID, commentID string) error
	RemoveCommentID(ctx context.Context, articleID, commentID string) error
	DistinctTags(ctx context.Context) ([]string, error)
}

// CommentRepository defines methods for article comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.ArticleComment) error
	GetByID(ctx context.Context, id string) (*domain.ArticleComment, error)
	Delete(ctx context.Context, id string) error
	DeleteByArticle(ctx context.Context, articleID string) error
	ListByArticle(ctx context.Context, articleID string) ([]domain.ArticleComment, error)
}

// VoteRepository is the authoritative vote ledger: per-user sets of upvoted
// and downvoted article IDs. Derived article counters are always recomputed
// from the counts this ledger reports, never incremented in place.
type VoteRepository interface {
	HasUpvote(ctx context.Context, userID, articleID string) (bool, error)
	HasDownvote(ctx context.Context, userID, articleID string) (bool, error)
	AddUpvote(ctx context.Context, userID, articleID string) error
	AddDownvote(ctx context.Context, userID, articleID string) error
	RemoveUpvote(ctx context.Context, userID, articleID string) error
	RemoveDownvote(ctx context.Context, userID, articleID string) error
	CountUpvotes(ctx context.Context, articleID string) (int, error)
	CountDownvotes(ctx context.Context, articleID string) (int, error)
	UpvotedArticleIDs(ctx context.Context, userID string, articleIDs []string) ([]string, error)
	DownvotedArticleIDs(ctx context.Context, userID string, articleIDs []string) ([]string, error)
	DeleteByArticle(ctx context.Context, articleID string) error
}
