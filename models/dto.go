package models

import "strconv"

type RegisterRequest struct {
	User RegisterUser `json:"user" binding:"required"`
}

type RegisterUser struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type LoginRequest struct {
	User LoginUser `json:"user" binding:"required"`
}

type LoginUser struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	User UpdateUser `json:"user" binding:"required"`
}

// UpdateUser fields are all optional; empty values leave the stored value
// untouched.
type UpdateUser struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type CreateArticleRequest struct {
	Article CreateArticle `json:"article" binding:"required"`
}

type CreateArticle struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList"`
}

type UpdateArticleRequest struct {
	Article UpdateArticle `json:"article" binding:"required"`
}

type UpdateArticle struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

type CreateCommentRequest struct {
	Comment CreateComment `json:"comment" binding:"required"`
}

type CreateComment struct {
	Body string `json:"body" binding:"required"`
}

const (
	DefaultOffset = 0
	DefaultLimit  = 10
	MaxLimit      = 100
)

// ArticleListParams carries the raw, string-typed query parameters of the
// list endpoint. Every field is optional; unknown parameters are dropped by
// the form binder. Filter turns them into a typed ArticleFilter.
type ArticleListParams struct {
	Author    string `form:"author"`
	Tag       string `form:"tag"`
	Favorited string `form:"favorited"`
	Offset    string `form:"offset"`
	Limit     string `form:"limit"`
}

// ArticleFilter is the parsed filter the article repository queries with.
// An empty Author/Tag/Favorited means no predicate on that axis.
type ArticleFilter struct {
	Author    string
	Tag       string
	Favorited string
	Offset    int
	Limit     int
}

// Filter parses the raw parameters. Non-numeric or negative offset/limit
// values fall back to their defaults instead of failing the request; limit
// is capped at MaxLimit.
func (p ArticleListParams) Filter() ArticleFilter {
	filter := ArticleFilter{
		Author:    p.Author,
		Tag:       p.Tag,
		Favorited: p.Favorited,
		Offset:    DefaultOffset,
		Limit:     DefaultLimit,
	}

	if offset, err := strconv.Atoi(p.Offset); err == nil && offset >= 0 {
		filter.Offset = offset
	}
	if limit, err := strconv.Atoi(p.Limit); err == nil && limit > 0 {
		filter.Limit = limit
		if filter.Limit > MaxLimit {
			filter.Limit = MaxLimit
		}
	}

	return filter
}
