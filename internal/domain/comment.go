package domain

import "time"

// ArticleComment represents a comment on an article. A comment is created
// only in the context of an existing article and its lifetime is bounded by
// that article: destroying the article destroys its comments, never the
// reverse.
type ArticleComment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	ArticleID string    `json:"article_id"`
	AuthorID  string    `json:"author_id"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
