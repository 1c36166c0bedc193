package domain

import "time"

// Article represents an article entity in the system.
//
// UpvotesCount and DownvotesCount are derived values: they always equal the
// number of users whose vote sets contain this article's ID. They are never
// set from client input.
type Article struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	Image          string    `json:"image"`
	Imgs           []string  `json:"imgs"`
	TagList        []string  `json:"tag_list"`
	UpvotesCount   int       `json:"upvotes_count"`
	DownvotesCount int       `json:"downvotes_count"`
	CommentIDs     []string  `json:"comment_ids"`
	AuthorID       string    `json:"author_id"`
	Author         *User     `json:"author,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	Tag         string
	Author      string // username
	UpvotedBy   string // username
	DownvotedBy string // username
	Limit       int
	Offset      int
}

// ArticlePatch carries a partial article update. Nil fields are untouched;
// non-nil empty values do clear the target field.
type ArticlePatch struct {
	Title       *string
	Description *string
	Body        *string
	TagList     []string
}
