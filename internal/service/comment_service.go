package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

// CommentService maintains the bidirectional association between an article
// and its comments. A comment only exists in the context of an article; its
// lifetime ends no later than the article's.
type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	validator   *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository, v *validator.Validator) *CommentService {
	return &CommentService{commentRepo: commentRepo, articleRepo: articleRepo, validator: v}
}

// Attach persists a new comment, then records its reference on the owning
// article. The two writes are not atomic: if the second fails, the comment
// row exists with no article-side reference and the error is surfaced.
func (s *CommentService) Attach(ctx context.Context, article *domain.Article, author *domain.User, body string) (*domain.ArticleComment, error) {
	comment := &domain.ArticleComment{
		ID:        uuid.New().String(),
		Body:      body,
		ArticleID: article.ID,
		AuthorID:  author.ID,
		Author:    author,
	}

	if err := s.validator.ValidateComment(comment); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.articleRepo.AppendCommentID(ctx, article.ID, comment.ID); err != nil {
		logger.Error("comment persisted but article reference not recorded",
			slog.String("comment_id", comment.ID),
			slog.String("article_id", article.ID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("record comment on article: %w", err)
	}

	// Reload so CreatedAt/UpdatedAt reflect the stored row.
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// Detach removes the comment reference from the article, then destroys the
// comment. Only the comment's author may detach it.
func (s *CommentService) Detach(ctx context.Context, actorID string, article *domain.Article, comment *domain.ArticleComment) error {
	if comment.AuthorID != actorID {
		return domain.ErrForbidden
	}

	if err := s.articleRepo.RemoveCommentID(ctx, article.ID, comment.ID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, comment.ID)
}

// Get fetches a comment by ID.
func (s *CommentService) Get(ctx context.Context, id string) (*domain.ArticleComment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// ListForArticle returns the article's comments, newest first.
func (s *CommentService) ListForArticle(ctx context.Context, articleID string) ([]domain.ArticleComment, error) {
	return s.commentRepo.ListByArticle(ctx, articleID)
}
