package service

import (
	"context"
	"fmt"

	"blog-platform/internal/domain"
	"blog-platform/internal/metrics"
	"blog-platform/internal/repository"
)

// VoteService maintains each user's sets of upvoted and downvoted article
// IDs and keeps the denormalized per-article counters consistent with them.
//
// Counters are recomputed from ledger membership on every mutation, never
// incremented in place: a stale concurrent read can transiently write a
// superseded value, but it was correct when read and the next recompute
// heals it. Running deltas would instead drift under partial failure.
type VoteService struct {
	articleRepo repository.ArticleRepository
	voteRepo    repository.VoteRepository
}

// NewVoteService creates a new VoteService.
func NewVoteService(articleRepo repository.ArticleRepository, voteRepo repository.VoteRepository) *VoteService {
	return &VoteService{articleRepo: articleRepo, voteRepo: voteRepo}
}

// Upvote adds the article to the user's upvote set, removes it from the
// downvote set if present, and recomputes both counters.
func (s *VoteService) Upvote(ctx context.Context, userID string, article *domain.Article) error {
	if article.AuthorID == userID {
		return domain.ErrForbidden
	}

	has, err := s.voteRepo.HasUpvote(ctx, userID, article.ID)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrAlreadyVoted
	}

	if err := s.voteRepo.AddUpvote(ctx, userID, article.ID); err != nil {
		return err
	}
	if err := s.voteRepo.RemoveDownvote(ctx, userID, article.ID); err != nil {
		return err
	}

	metrics.ObserveVote("up", "cast")
	return s.recountBoth(ctx, article)
}

// Downvote adds the article to the user's downvote set, removes it from the
// upvote set if present, and recomputes both counters.
func (s *VoteService) Downvote(ctx context.Context, userID string, article *domain.Article) error {
	if article.AuthorID == userID {
		return domain.ErrForbidden
	}

	has, err := s.voteRepo.HasDownvote(ctx, userID, article.ID)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrAlreadyVoted
	}

	if err := s.voteRepo.AddDownvote(ctx, userID, article.ID); err != nil {
		return err
	}
	if err := s.voteRepo.RemoveUpvote(ctx, userID, article.ID); err != nil {
		return err
	}

	metrics.ObserveVote("down", "cast")
	return s.recountBoth(ctx, article)
}

// CancelUpvote removes the article from the user's upvote set and recomputes
// the upvote counter.
func (s *VoteService) CancelUpvote(ctx context.Context, userID string, article *domain.Article) error {
	has, err := s.voteRepo.HasUpvote(ctx, userID, article.ID)
	if err != nil {
		return err
	}
	if !has {
		return domain.ErrVoteNotFound
	}

	if err := s.voteRepo.RemoveUpvote(ctx, userID, article.ID); err != nil {
		return err
	}

	metrics.ObserveVote("up", "cancel")
	return s.recountUpvotes(ctx, article)
}

// CancelDownvote removes the article from the user's downvote set and
// recomputes the downvote counter.
func (s *VoteService) CancelDownvote(ctx context.Context, userID string, article *domain.Article) error {
	has, err := s.voteRepo.HasDownvote(ctx, userID, article.ID)
	if err != nil {
		return err
	}
	if !has {
		return domain.ErrVoteNotFound
	}

	if err := s.voteRepo.RemoveDownvote(ctx, userID, article.ID); err != nil {
		return err
	}

	metrics.ObserveVote("down", "cancel")
	return s.recountDownvotes(ctx, article)
}

func (s *VoteService) recountBoth(ctx context.Context, article *domain.Article) error {
	if err := s.recountUpvotes(ctx, article); err != nil {
		return err
	}
	return s.recountDownvotes(ctx, article)
}

func (s *VoteService) recountUpvotes(ctx context.Context, article *domain.Article) error {
	count, err := s.voteRepo.CountUpvotes(ctx, article.ID)
	if err != nil {
		return fmt.Errorf("recount upvotes: %w", err)
	}
	if err := s.articleRepo.SetUpvotesCount(ctx, article.ID, count); err != nil {
		return err
	}
	article.UpvotesCount = count
	return nil
}

func (s *VoteService) recountDownvotes(ctx context.Context, article *domain.Article) error {
	count, err := s.voteRepo.CountDownvotes(ctx, article.ID)
	if err != nil {
		return fmt.Errorf("recount downvotes: %w", err)
	}
	if err := s.articleRepo.SetDownvotesCount(ctx, article.ID, count); err != nil {
		return err
	}
	article.DownvotesCount = count
	return nil
}

// Flags reports which of the given articles the viewer has upvoted and
// downvoted. Used to decorate read-model projections.
func (s *VoteService) Flags(ctx context.Context, viewerID string, articleIDs []string) (map[string]bool, map[string]bool, error) {
	upvotedIDs, err := s.voteRepo.UpvotedArticleIDs(ctx, viewerID, articleIDs)
	if err != nil {
		return nil, nil, err
	}
	downvotedIDs, err := s.voteRepo.DownvotedArticleIDs(ctx, viewerID, articleIDs)
	if err != nil {
		return nil, nil, err
	}

	upvoted := make(map[string]bool, len(upvotedIDs))
	for _, id := range upvotedIDs {
		upvoted[id] = true
	}
	downvoted := make(map[string]bool, len(downvotedIDs))
	for _, id := range downvotedIDs {
		downvoted[id] = true
	}
	return upvoted, downvoted, nil
}
