package service

import (
	"context"

	"blog-platform/internal/domain"
)

// ArticleServiceInterface defines the article aggregate operations the route
// layer depends on. Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	Create(ctx context.Context, author *domain.User, in CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, actorID string, article *domain.Article, in UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, actorID string, article *domain.Article) error
	AttachBodyImage(ctx context.Context, article *domain.Article, upload domain.Upload) (string, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	Tags(ctx context.Context) ([]string, error)
}

// VoteServiceInterface defines the vote ledger operations.
type VoteServiceInterface interface {
	Upvote(ctx context.Context, userID string, article *domain.Article) error
	Downvote(ctx context.Context, userID string, article *domain.Article) error
	CancelUpvote(ctx context.Context, userID string, article *domain.Article) error
	CancelDownvote(ctx context.Context, userID string, article *domain.Article) error
	Flags(ctx context.Context, viewerID string, articleIDs []string) (map[string]bool, map[string]bool, error)
}

// CommentServiceInterface defines the comment association operations.
type CommentServiceInterface interface {
	Attach(ctx context.Context, article *domain.Article, author *domain.User, body string) (*domain.ArticleComment, error)
	Detach(ctx context.Context, actorID string, article *domain.Article, comment *domain.ArticleComment) error
	Get(ctx context.Context, id string) (*domain.ArticleComment, error)
	ListForArticle(ctx context.Context, articleID string) ([]domain.ArticleComment, error)
}

// UserServiceInterface defines registration, login and profile operations.
type UserServiceInterface interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User, patch domain.UserPatch, avatar *domain.Upload, removePhoto bool) (*domain.User, error)
}
