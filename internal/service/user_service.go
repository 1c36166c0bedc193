package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/repository"
	"blog-platform/internal/validator"
)

// UserService handles registration, login and profile updates, including the
// avatar file lifecycle.
type UserService struct {
	userRepo  repository.UserRepository
	assets    *AssetStore
	tokens    *auth.TokenManager
	validator *validator.Validator
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, assets *AssetStore, tokens *auth.TokenManager, v *validator.Validator) *UserService {
	return &UserService{userRepo: userRepo, assets: assets, tokens: tokens, validator: v}
}

// Register creates a new user and returns it with a fresh token.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	user := &domain.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
	}

	if err := s.validator.ValidateNewUser(user, password); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh token.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Get fetches a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update applies a partial profile update and the avatar directives that
// accompany it. Avatar replacement follows the same two-phase sequence as
// article covers: accept new file, save document, then release the old file;
// roll back the new file if the save fails.
func (s *UserService) Update(ctx context.Context, user *domain.User, patch domain.UserPatch, avatar *domain.Upload, removePhoto bool) (*domain.User, error) {
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	previousAvatar := user.Image
	acceptedAvatar := ""
	if avatar != nil {
		filename, err := s.assets.AcceptAvatar(*avatar)
		if err != nil {
			return nil, err
		}
		acceptedAvatar = filename
		user.Image = filename
	} else if removePhoto && user.Image != "" {
		if err := s.assets.ReleaseAvatar(user.Image); err != nil {
			return nil, err
		}
		user.Image = ""
		previousAvatar = ""
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if acceptedAvatar != "" {
			if relErr := s.assets.ReleaseAvatar(acceptedAvatar); relErr != nil {
				logger.Error("failed to roll back avatar file",
					slog.String("file", acceptedAvatar),
					slog.String("error", relErr.Error()))
			}
		}
		return nil, err
	}

	if acceptedAvatar != "" && previousAvatar != "" {
		if err := s.assets.ReleaseAvatar(previousAvatar); err != nil {
			logger.Error("failed to release previous avatar file",
				slog.String("file", previousAvatar),
				slog.String("error", err.Error()))
		}
	}

	return user, nil
}
