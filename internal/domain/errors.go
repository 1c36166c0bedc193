package domain

import "errors"

// Sentinel errors returned by services and repositories. Handlers map these
// to HTTP statuses; everything else surfaces as an internal error.
var (
	// ErrNotFound means a referenced article, comment or user is absent.
	ErrNotFound = errors.New("entity not found")

	// ErrForbidden means the acting identity lacks rights over the target.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyVoted means the article is already in the user's vote set.
	ErrAlreadyVoted = errors.New("already voted")

	// ErrVoteNotFound means the article is absent from the user's vote set.
	ErrVoteNotFound = errors.New("vote not found")

	// ErrInvalidFileType means an upload's extension or MIME type is outside
	// the allow-list.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrFileTooLarge means an upload exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file too large")

	// ErrDuplicateSlug means the slug uniqueness constraint was violated.
	ErrDuplicateSlug = errors.New("duplicate slug")

	// ErrDuplicateUser means the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already taken")

	// ErrInvalidCredentials means login failed; the cause is deliberately
	// not disclosed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
