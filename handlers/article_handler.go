package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

// GetArticles lists articles filtered by any combination of author, tag and
// favorited, newest first. Anonymous callers get favorited/following = false.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	// Binding query strings into string fields cannot fail; malformed
	// pagination values are coerced later, unknown parameters ignored.
	_ = c.ShouldBindQuery(&params)

	articles, total, err := h.articleService.ListArticles(params, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":      articles,
		"articlesCount": total,
	})
}

func (h *ArticleHandler) GetFeed(c *gin.Context) {
	var params models.ArticleListParams
	_ = c.ShouldBindQuery(&params)

	articles, total, err := h.articleService.FeedArticles(params, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":      articles,
		"articlesCount": total,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Param("slug"), middleware.CurrentUserID(c))
	if err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(req, middleware.CurrentUserID(c))
	if err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticle(c.Param("slug"), req, middleware.CurrentUserID(c))
	if err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.DeleteArticle(c.Param("slug"), middleware.CurrentUserID(c)); err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *ArticleHandler) FavoriteArticle(c *gin.Context) {
	article, err := h.articleService.FavoriteArticle(c.Param("slug"), middleware.CurrentUserID(c))
	if err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) UnfavoriteArticle(c *gin.Context) {
	article, err := h.articleService.UnfavoriteArticle(c.Param("slug"), middleware.CurrentUserID(c))
	if err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) GetComments(c *gin.Context) {
	comments, err := h.articleService.ListComments(c.Param("slug"), middleware.CurrentUserID(c))
	if err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *ArticleHandler) AddComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	comment, err := h.articleService.AddComment(c.Param("slug"), req, middleware.CurrentUserID(c))
	if err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *ArticleHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "comment")
		return
	}

	if err := h.articleService.DeleteComment(c.Param("slug"), uint(commentID), middleware.CurrentUserID(c)); err != nil {
		h.sendArticleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *ArticleHandler) sendArticleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		h.Helper.SendNotFoundError(c, "article")
	case errors.Is(err, services.ErrTitleTaken):
		h.Helper.SendUnprocessable(c, "title", "must be unique")
	case errors.Is(err, services.ErrNotAuthor), errors.Is(err, services.ErrNotCommenter):
		h.Helper.SendForbiddenError(c, "is not the author")
	default:
		h.Helper.SendInternalError(c, err)
	}
}
