package models

import (
	"sort"
	"time"
)

// Profile is the viewer-relative projection of a user.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// ArticleSummary is the list-view projection of an article. The body is
// deliberately absent from the type so it can never leak into feed output.
type ArticleSummary struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// ArticleDetail is the single-article projection, summary plus body.
type ArticleDetail struct {
	ArticleSummary
	Body string `json:"body"`
}

type CommentSummary struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Body      string    `json:"body"`
	Author    Profile   `json:"author"`
}

// UserAuth is the authenticated-user envelope body returned by the user
// endpoints, carrying a fresh token.
type UserAuth struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}

func NewUserAuth(user User, token string) UserAuth {
	return UserAuth{
		Email:    user.Email,
		Username: user.Username,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    token,
	}
}

// NewProfile projects a user for the given viewer. viewerID 0 means
// anonymous: following is false and no follower lookups happen.
func NewProfile(user User, viewerID uint) Profile {
	return Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: user.IsFollowedBy(viewerID),
	}
}

// NewArticleSummary projects an article for the given viewer. It expects the
// author (with followers), tags and favoritedBy set to be loaded.
func NewArticleSummary(article Article, viewerID uint) ArticleSummary {
	tagList := make([]string, 0, len(article.Tags))
	for _, tag := range article.Tags {
		tagList = append(tagList, tag.Name)
	}
	sort.Strings(tagList)

	return ArticleSummary{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		TagList:        tagList,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      article.IsFavoritedBy(viewerID),
		FavoritesCount: len(article.FavoritedBy),
		Author:         NewProfile(article.Author, viewerID),
	}
}

// NewArticleSummaries maps a fetched page in order. The result is never nil
// so an empty page serializes as [].
func NewArticleSummaries(articles []Article, viewerID uint) []ArticleSummary {
	summaries := make([]ArticleSummary, 0, len(articles))
	for _, article := range articles {
		summaries = append(summaries, NewArticleSummary(article, viewerID))
	}
	return summaries
}

func NewArticleDetail(article Article, viewerID uint) ArticleDetail {
	return ArticleDetail{
		ArticleSummary: NewArticleSummary(article, viewerID),
		Body:           article.Body,
	}
}

func NewCommentSummary(comment Comment, viewerID uint) CommentSummary {
	return CommentSummary{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Body:      comment.Body,
		Author:    NewProfile(comment.Author, viewerID),
	}
}

func NewCommentSummaries(comments []Comment, viewerID uint) []CommentSummary {
	summaries := make([]CommentSummary, 0, len(comments))
	for _, comment := range comments {
		summaries = append(summaries, NewCommentSummary(comment, viewerID))
	}
	return summaries
}
