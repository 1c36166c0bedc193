package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

// ArticleService owns the article aggregate: slug, vote counters, comment
// references and image references, and the operations that keep them
// consistent across independent requests.
//
// Within one operation, file moves are sequenced strictly before the
// database write recording their result. A filename is never persisted
// before the file exists under that name; a file is never deleted before its
// reference is confirmed gone, except during replacement, where the new file
// is accepted first so readers never see a document referencing no file.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
	voteRepo    repository.VoteRepository
	assets      *AssetStore
	validator   *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
	voteRepo repository.VoteRepository,
	assets *AssetStore,
	v *validator.Validator,
) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		assets:      assets,
		validator:   v,
	}
}

// CreateArticleInput carries the fields for a new article. Cover is non-nil
// only when the transport layer already received a file.
type CreateArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
	Cover       *domain.Upload
}

// Create validates the input, generates the slug, accepts the cover upload
// if present, and persists the article. A slug collision gets a fresh suffix
// and a retry.
func (s *ArticleService) Create(ctx context.Context, author *domain.User, in CreateArticleInput) (*domain.Article, error) {
	article := &domain.Article{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		TagList:     in.TagList,
		Imgs:        []string{},
		AuthorID:    author.ID,
		Author:      author,
	}

	slug, err := NewSlug(in.Title)
	if err != nil {
		return nil, err
	}
	article.Slug = slug

	if err := s.validator.ValidateArticle(article); err != nil {
		return nil, err
	}

	// Accept the file before persisting so the stored filename is known at
	// creation time.
	if in.Cover != nil {
		filename, err := s.assets.AcceptCoverImage(*in.Cover)
		if err != nil {
			return nil, err
		}
		article.Image = filename
	}

	for attempt := 0; ; attempt++ {
		err = s.articleRepo.Create(ctx, article)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateSlug) || attempt+1 >= slugMaxAttempts {
			// Roll back the accepted cover so neither a dangling file nor a
			// dangling reference survives the failed create.
			if article.Image != "" {
				if relErr := s.assets.ReleaseCoverImage(article.Image); relErr != nil {
					logger.Error("failed to roll back cover file",
						slog.String("file", article.Image),
						slog.String("error", relErr.Error()))
				}
			}
			return nil, err
		}
		slug, slugErr := NewSlug(in.Title)
		if slugErr != nil {
			return nil, slugErr
		}
		article.Slug = slug
	}

	metrics.ArticleEventsTotal.WithLabelValues("created").Inc()
	return s.articleRepo.GetBySlug(ctx, article.Slug)
}

// UpdateArticleInput carries a partial article update plus the asset
// directives that accompany it.
type UpdateArticleInput struct {
	Patch       domain.ArticlePatch
	Cover       *domain.Upload
	RemoveCover bool

	// RetainedBodyImages lists the body-image filenames the client kept in
	// the saved body; meaningful only when RetainedSupplied is true.
	RetainedBodyImages []string
	RetainedSupplied   bool
}

// Update applies a partial update. Only the acting author may update; fields
// absent from the patch stay untouched, present-but-empty fields do clear.
//
// Cover replacement is two-phase: the new file is accepted first, the old
// one released only after the document save succeeds. If the save fails the
// newly accepted file is rolled back.
func (s *ArticleService) Update(ctx context.Context, actorID string, article *domain.Article, in UpdateArticleInput) (*domain.Article, error) {
	if article.AuthorID != actorID {
		return nil, domain.ErrForbidden
	}

	if in.Patch.Title != nil {
		article.Title = *in.Patch.Title
	}
	if in.Patch.Description != nil {
		article.Description = *in.Patch.Description
	}
	if in.Patch.Body != nil {
		article.Body = *in.Patch.Body
	}
	if in.Patch.TagList != nil {
		article.TagList = in.Patch.TagList
	}

	previousCover := article.Image
	acceptedCover := ""
	if in.Cover != nil {
		filename, err := s.assets.AcceptCoverImage(*in.Cover)
		if err != nil {
			return nil, err
		}
		acceptedCover = filename
		article.Image = filename
	} else if in.RemoveCover && article.Image != "" {
		if err := s.assets.ReleaseCoverImage(article.Image); err != nil {
			return nil, err
		}
		article.Image = ""
		previousCover = ""
	}

	if in.RetainedSupplied {
		if _, err := s.assets.ReconcileBodyImages(article.Imgs, in.RetainedBodyImages); err != nil {
			logger.Error("body image reconciliation incomplete",
				slog.String("article_id", article.ID),
				slog.String("error", err.Error()))
		}
		if len(in.RetainedBodyImages) > 0 {
			article.Imgs = in.RetainedBodyImages
		}
	}

	if err := s.validator.ValidateArticle(article); err != nil {
		return nil, err
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		if acceptedCover != "" {
			if relErr := s.assets.ReleaseCoverImage(acceptedCover); relErr != nil {
				logger.Error("failed to roll back cover file",
					slog.String("file", acceptedCover),
					slog.String("error", relErr.Error()))
			}
		}
		return nil, err
	}

	// The document now references the new cover; the old file is orphan.
	if acceptedCover != "" && previousCover != "" {
		if err := s.assets.ReleaseCoverImage(previousCover); err != nil {
			logger.Error("failed to release previous cover file",
				slog.String("file", previousCover),
				slog.String("error", err.Error()))
		}
	}

	metrics.ArticleEventsTotal.WithLabelValues("updated").Inc()
	return s.articleRepo.GetBySlug(ctx, article.Slug)
}

// Delete destroys the article and everything it owns: its comments, its
// cover and body-image files, and the article's membership in every user's
// vote sets. Only the author may delete.
//
// The steps are not atomic. A failure partway can leave files or vote
// references stale while the comments are already gone; the error is
// surfaced and the remaining state is reachable by retrying the delete.
func (s *ArticleService) Delete(ctx context.Context, actorID string, article *domain.Article) error {
	if article.AuthorID != actorID {
		return domain.ErrForbidden
	}

	if err := s.commentRepo.DeleteByArticle(ctx, article.ID); err != nil {
		return err
	}

	if err := s.assets.ReleaseCoverImage(article.Image); err != nil {
		logger.Error("failed to release cover file on delete",
			slog.String("file", article.Image),
			slog.String("error", err.Error()))
	}
	if err := s.assets.ReleaseBodyImages(article.Imgs); err != nil {
		logger.Error("failed to release body image files on delete",
			slog.String("article_id", article.ID),
			slog.String("error", err.Error()))
	}

	if err := s.voteRepo.DeleteByArticle(ctx, article.ID); err != nil {
		return err
	}

	if err := s.articleRepo.Delete(ctx, article.ID); err != nil {
		return err
	}

	metrics.ArticleEventsTotal.WithLabelValues("deleted").Inc()
	return nil
}

// AttachBodyImage accepts an uploaded body image, appends it to the
// article's image list, and persists the article. The returned filename is
// what the editing client keeps in its retained list for the eventual save.
func (s *ArticleService) AttachBodyImage(ctx context.Context, article *domain.Article, upload domain.Upload) (string, error) {
	filename, err := s.assets.AcceptBodyImage(upload)
	if err != nil {
		return "", err
	}

	article.Imgs = append(article.Imgs, filename)
	if err := s.articleRepo.Update(ctx, article); err != nil {
		if relErr := s.assets.ReleaseBodyImages([]string{filename}); relErr != nil {
			logger.Error("failed to roll back body image file",
				slog.String("file", filename),
				slog.String("error", relErr.Error()))
		}
		return "", err
	}
	return filename, nil
}

// GetBySlug fetches one article with its author.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.articleRepo.GetBySlug(ctx, slug)
}

// List returns articles matching the filter plus the total count.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	return s.articleRepo.List(ctx, filter)
}

// Tags returns every tag in use, sorted.
func (s *ArticleService) Tags(ctx context.Context) ([]string, error) {
	return s.articleRepo.DistinctTags(ctx)
}
