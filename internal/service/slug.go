package service

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

const (
	slugSuffixLen   = 6
	slugMaxAttempts = 3

	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify normalizes a title: lowercase, runs of whitespace and punctuation
// collapsed to single hyphens.
func slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// slugSuffix returns a short random base36 token.
func slugSuffix() (string, error) {
	b := make([]byte, slugSuffixLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i := range b {
		b[i] = base36Alphabet[int(b[i])%len(base36Alphabet)]
	}
	return string(b), nil
}

// NewSlug derives a URL-safe identifier candidate from an article title. The
// random suffix keeps the collision probability low; callers still retry on
// a uniqueness-constraint failure.
func NewSlug(title string) (string, error) {
	base := slugify(title)
	if base == "" {
		base = "article"
	}
	suffix, err := slugSuffix()
	if err != nil {
		return "", err
	}
	return base + "-" + suffix, nil
}
