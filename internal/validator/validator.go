package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-platform/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article entity before it is persisted.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Body,
			validation.Required.Error("body_required"),
		),
		validation.Field(&a.AuthorID,
			validation.Required.Error("author_id_required"),
		),
	)
}

// ValidateComment validates an ArticleComment entity.
func (v *Validator) ValidateComment(c *domain.ArticleComment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Body,
			validation.Required.Error("body_required"),
		),
		validation.Field(&c.ArticleID,
			validation.Required.Error("article_id_required"),
		),
		validation.Field(&c.AuthorID,
			validation.Required.Error("author_id_required"),
		),
	)
}

// ValidateNewUser validates a User entity at registration time. The plain
// password is validated separately because only its hash reaches the entity.
func (v *Validator) ValidateNewUser(u *domain.User, password string) error {
	if err := validation.ValidateStruct(u,
		validation.Field(&u.Username,
			validation.Required.Error("username_required"),
		),
		validation.Field(&u.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
	); err != nil {
		return err
	}

	if err := validation.Validate(password,
		validation.Required.Error("password_required"),
		validation.Length(8, 72).Error("password_must_be_8_to_72_chars"),
	); err != nil {
		return validation.Errors{"password": err}
	}
	return nil
}

// ErrorsToMap flattens ozzo validation errors into a field-keyed map for the
// JSON error envelope. Non-validation errors land under "error".
func ErrorsToMap(err error) map[string]string {
	out := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	if err != nil {
		out["error"] = err.Error()
	}
	return out
}
