package models

import (
	"time"
)

type Article struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Body        string `json:"body" gorm:"not null;type:text"`

	AuthorID uint `json:"author_id" gorm:"not null"`
	Author   User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	Tags        []Tag  `json:"tags" gorm:"many2many:article_tags;"`
	FavoritedBy []User `json:"-" gorm:"many2many:article_favorites;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFavoritedBy reports whether viewerID is in the loaded favoritedBy set.
func (a *Article) IsFavoritedBy(viewerID uint) bool {
	if viewerID == 0 {
		return false
	}
	for _, user := range a.FavoritedBy {
		if user.ID == viewerID {
			return true
		}
	}
	return false
}
