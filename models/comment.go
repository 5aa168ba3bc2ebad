package models

import (
	"time"
)

type Comment struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Body string `json:"body" gorm:"not null;type:text"`

	ArticleID uint    `json:"article_id" gorm:"not null"`
	Article   Article `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`

	AuthorID uint `json:"author_id" gorm:"not null"`
	Author   User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
