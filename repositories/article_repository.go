package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
)

// summaryColumns is the select list for feed pages. The body column is the
// heaviest field and is never needed in list views, so it is left out.
const summaryColumns = "articles.id, articles.slug, articles.title, articles.description, articles.author_id, articles.created_at, articles.updated_at"

type ArticleRepository interface {
	Create(article *models.Article) error
	GetBySlug(slug string) (*models.Article, error)
	SlugExists(slug string) (bool, error)
	GetList(filter models.ArticleFilter) ([]models.Article, int64, error)
	GetFeed(authorIDs []uint, offset, limit int) ([]models.Article, int64, error)
	Update(article *models.Article) error
	Delete(article *models.Article) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
	AddFavorite(article *models.Article, user *models.User) error
	RemoveFavorite(article *models.Article, user *models.User) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("slug = ?", slug).
		Preload("Author.FollowedBy").
		Preload("Tags", orderTagsByName).
		Preload("FavoritedBy").
		First(&article).Error
	return &article, err
}

func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// buildListQuery conjoins one predicate per present filter field. Each join
// matches at most one row per article (usernames and tag names are unique),
// so no DISTINCT is needed.
func (r *articleRepository) buildListQuery(filter models.ArticleFilter) *gorm.DB {
	query := r.db.Model(&models.Article{})

	if filter.Author != "" {
		query = query.
			Joins("JOIN users AS authors ON authors.id = articles.author_id").
			Where("authors.username = ?", filter.Author)
	}

	if filter.Tag != "" {
		query = query.
			Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name = ?", filter.Tag)
	}

	if filter.Favorited != "" {
		query = query.
			Joins("JOIN article_favorites ON article_favorites.article_id = articles.id").
			Joins("JOIN users AS favoriters ON favoriters.id = article_favorites.user_id").
			Where("favoriters.username = ?", filter.Favorited)
	}

	return query
}

// GetList runs the count and page queries over the same predicate set. The
// count ignores pagination; the page is newest-first with the article id as
// tie-break so pagination stays reproducible.
func (r *articleRepository) GetList(filter models.ArticleFilter) ([]models.Article, int64, error) {
	var total int64
	if err := r.buildListQuery(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.buildListQuery(filter).
		Select(summaryColumns).
		Preload("Author.FollowedBy").
		Preload("Tags", orderTagsByName).
		Preload("FavoritedBy").
		Order("articles.created_at DESC, articles.id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetFeed(authorIDs []uint, offset, limit int) ([]models.Article, int64, error) {
	var total int64
	if err := r.db.Model(&models.Article{}).
		Where("author_id IN ?", authorIDs).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.db.Model(&models.Article{}).
		Select(summaryColumns).
		Where("author_id IN ?", authorIDs).
		Preload("Author.FollowedBy").
		Preload("Tags", orderTagsByName).
		Preload("FavoritedBy").
		Order("articles.created_at DESC, articles.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(article *models.Article) error {
	return r.db.Select("Tags", "FavoritedBy").Delete(article).Error
}

func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

func (r *articleRepository) AddFavorite(article *models.Article, user *models.User) error {
	return r.db.Model(article).Association("FavoritedBy").Append(user)
}

func (r *articleRepository) RemoveFavorite(article *models.Article, user *models.User) error {
	return r.db.Model(article).Association("FavoritedBy").Delete(user)
}

func orderTagsByName(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name ASC")
}
