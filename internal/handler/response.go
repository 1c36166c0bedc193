package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/middleware"
	"blog-platform/internal/validator"
)

// The response shapes below are the JSON contract clients rely on; field
// names and nesting must stay exactly as they are.

// ProfileResponse is the public projection of a user.
type ProfileResponse struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

func toProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{Username: u.Username, Bio: u.Bio, Image: u.Image}
}

// ArticleResponse is the read-model projection of an article for a viewer.
type ArticleResponse struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Image          string          `json:"image"`
	Imgs           []string        `json:"imgs"`
	Description    string          `json:"description"`
	Body           string          `json:"body"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
	TagList        []string        `json:"tagList"`
	Upvoted        bool            `json:"upvoted"`
	Downvoted      bool            `json:"downvoted"`
	UpvotesCount   int             `json:"upvotesCount"`
	DownvotesCount int             `json:"downvotesCount"`
	Author         ProfileResponse `json:"author"`
}

func toArticleResponse(a *domain.Article, upvoted, downvoted bool) ArticleResponse {
	resp := ArticleResponse{
		Slug:           a.Slug,
		Title:          a.Title,
		Image:          a.Image,
		Imgs:           a.Imgs,
		Description:    a.Description,
		Body:           a.Body,
		CreatedAt:      a.CreatedAt.Format(TimeFormat),
		UpdatedAt:      a.UpdatedAt.Format(TimeFormat),
		TagList:        a.TagList,
		Upvoted:        upvoted,
		Downvoted:      downvoted,
		UpvotesCount:   a.UpvotesCount,
		DownvotesCount: a.DownvotesCount,
	}
	if resp.Imgs == nil {
		resp.Imgs = []string{}
	}
	if resp.TagList == nil {
		resp.TagList = []string{}
	}
	if a.Author != nil {
		resp.Author = toProfileResponse(a.Author)
	}
	return resp
}

// CommentResponse is the projection of an article comment.
type CommentResponse struct {
	ID        string          `json:"id"`
	Body      string          `json:"body"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
	Author    ProfileResponse `json:"author"`
}

func toCommentResponse(c *domain.ArticleComment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(TimeFormat),
		UpdatedAt: c.UpdatedAt.Format(TimeFormat),
	}
	if c.Author != nil {
		resp.Author = toProfileResponse(c.Author)
	}
	return resp
}

// UserResponse is the authenticated projection of the acting user.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token,omitempty"`
}

func toUserResponse(u *domain.User, token string) UserResponse {
	return UserResponse{
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Image:    u.Image,
		Token:    token,
	}
}

// respondError maps service errors onto the HTTP error contract.
func respondError(c *gin.Context, err error) {
	var ve validation.Errors
	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domain.ErrAlreadyVoted):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domain.ErrVoteNotFound), errors.Is(err, domain.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domain.ErrFileTooLarge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{
			"File size": "is too large. Max limit is 1 MB."}})
	case errors.Is(err, domain.ErrInvalidFileType):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{
			"File type": "is invalid. Must be .png, .jpeg, .jpg. or .gif."}})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{
			"email or password": "is invalid"}})
	case errors.Is(err, domain.ErrDuplicateUser):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{
			"username or email": "is already taken"}})
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validator.ErrorsToMap(ve)})
	default:
		logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
