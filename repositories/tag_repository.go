package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetPopular(limit int) ([]string, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

// GetPopular ranks tags by how many articles carry them, most used first,
// name ascending on equal counts. The LEFT JOIN keeps unused tags eligible
// for the tail of the ranking.
func (r *tagRepository) GetPopular(limit int) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Tag{}).
		Joins("LEFT JOIN article_tags ON article_tags.tag_id = tags.id").
		Group("tags.id, tags.name").
		Order("COUNT(article_tags.article_id) DESC, tags.name ASC").
		Limit(limit).
		Pluck("tags.name", &names).Error
	return names, err
}
