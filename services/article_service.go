package services

import (
	"errors"
	"fmt"

	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var (
	ErrTitleTaken   = errors.New("title must be unique")
	ErrNotAuthor    = errors.New("not the author of this article")
	ErrNotCommenter = errors.New("not the author of this comment")
)

type ArticleService interface {
	ListArticles(params models.ArticleListParams, viewerID uint) ([]models.ArticleSummary, int64, error)
	FeedArticles(params models.ArticleListParams, viewerID uint) ([]models.ArticleSummary, int64, error)
	GetArticle(slug string, viewerID uint) (*models.ArticleDetail, error)
	CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.ArticleDetail, error)
	UpdateArticle(slug string, req models.UpdateArticleRequest, userID uint) (*models.ArticleDetail, error)
	DeleteArticle(slug string, userID uint) error
	FavoriteArticle(slug string, userID uint) (*models.ArticleDetail, error)
	UnfavoriteArticle(slug string, userID uint) (*models.ArticleDetail, error)
	ListComments(slug string, viewerID uint) ([]models.CommentSummary, error)
	AddComment(slug string, req models.CreateCommentRequest, userID uint) (*models.CommentSummary, error)
	DeleteComment(slug string, commentID uint, userID uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	tagRepo     repositories.TagRepository
	userRepo    repositories.UserRepository
	commentRepo repositories.CommentRepository
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

// ListArticles parses the raw query parameters, runs the count and page
// queries and maps the page for the viewer. An anonymous viewer passes 0.
func (s *articleService) ListArticles(params models.ArticleListParams, viewerID uint) ([]models.ArticleSummary, int64, error) {
	filter := params.Filter()

	articles, total, err := s.articleRepo.GetList(filter)
	if err != nil {
		return nil, 0, err
	}

	return models.NewArticleSummaries(articles, viewerID), total, nil
}

// FeedArticles pages through articles by authors the viewer follows. Only the
// pagination fields of params apply here.
func (s *articleService) FeedArticles(params models.ArticleListParams, viewerID uint) ([]models.ArticleSummary, int64, error) {
	authorIDs, err := s.userRepo.GetFollowedIDs(viewerID)
	if err != nil {
		return nil, 0, err
	}
	if len(authorIDs) == 0 {
		return []models.ArticleSummary{}, 0, nil
	}

	filter := params.Filter()
	articles, total, err := s.articleRepo.GetFeed(authorIDs, filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, err
	}

	return models.NewArticleSummaries(articles, viewerID), total, nil
}

func (s *articleService) GetArticle(slug string, viewerID uint) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	detail := models.NewArticleDetail(*article, viewerID)
	return &detail, nil
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.ArticleDetail, error) {
	articleSlug := s.makeSlug(req.Article.Title, authorID)

	exists, err := s.articleRepo.SlugExists(articleSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrTitleTaken
	}

	tags, err := s.findOrCreateTags(req.Article.TagList)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Slug:        articleSlug,
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		AuthorID:    authorID,
		Tags:        tags,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.GetArticle(articleSlug, authorID)
}

func (s *articleService) UpdateArticle(slugParam string, req models.UpdateArticleRequest, userID uint) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetBySlug(slugParam)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	if req.Article.Title != "" && req.Article.Title != article.Title {
		newSlug := s.makeSlug(req.Article.Title, userID)
		if newSlug != article.Slug {
			exists, err := s.articleRepo.SlugExists(newSlug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrTitleTaken
			}
			article.Slug = newSlug
		}
		article.Title = req.Article.Title
	}
	if req.Article.Description != "" {
		article.Description = req.Article.Description
	}
	if req.Article.Body != "" {
		article.Body = req.Article.Body
	}

	if req.Article.TagList != nil {
		tags, err := s.findOrCreateTags(req.Article.TagList)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceTags(article, tags); err != nil {
			return nil, err
		}
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.GetArticle(article.Slug, userID)
}

func (s *articleService) DeleteArticle(slug string, userID uint) error {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return err
	}

	if article.AuthorID != userID {
		return ErrNotAuthor
	}

	return s.articleRepo.Delete(article)
}

func (s *articleService) FavoriteArticle(slug string, userID uint) (*models.ArticleDetail, error) {
	return s.setFavorite(slug, userID, true)
}

func (s *articleService) UnfavoriteArticle(slug string, userID uint) (*models.ArticleDetail, error) {
	return s.setFavorite(slug, userID, false)
}

// setFavorite is an idempotent set operation: favoriting twice or
// unfavoriting a non-favorite is a no-op.
func (s *articleService) setFavorite(slug string, userID uint, favorite bool) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if article.IsFavoritedBy(userID) != favorite {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if favorite {
			err = s.articleRepo.AddFavorite(article, user)
		} else {
			err = s.articleRepo.RemoveFavorite(article, user)
		}
		if err != nil {
			return nil, err
		}
	}

	return s.GetArticle(slug, userID)
}

func (s *articleService) ListComments(slug string, viewerID uint) ([]models.CommentSummary, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByArticleID(article.ID)
	if err != nil {
		return nil, err
	}

	return models.NewCommentSummaries(comments, viewerID), nil
}

func (s *articleService) AddComment(slug string, req models.CreateCommentRequest, userID uint) (*models.CommentSummary, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:      req.Comment.Body,
		ArticleID: article.ID,
		AuthorID:  userID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	comment, err = s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	summary := models.NewCommentSummary(*comment, userID)
	return &summary, nil
}

func (s *articleService) DeleteComment(slug string, commentID uint, userID uint) error {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}

	if comment.ArticleID != article.ID {
		return gorm.ErrRecordNotFound
	}
	if comment.AuthorID != userID {
		return ErrNotCommenter
	}

	return s.commentRepo.Delete(commentID)
}

// makeSlug suffixes the slugified title with the author id, matching the
// uniqueness scheme of the wire format (the same user cannot reuse a title,
// different users can).
func (s *articleService) makeSlug(title string, authorID uint) string {
	return fmt.Sprintf("%s-%d", slug.Make(title), authorID)
}

func (s *articleService) findOrCreateTags(names []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range names {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			tag = &models.Tag{Name: name}
			if err := s.tagRepo.Create(tag); err != nil {
				return nil, err
			}
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}
