package models

import (
	"time"
)

const DefaultUserImage = "https://api.realworld.io/images/smiley-cyrus.jpeg"

type User struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`

	// FollowedBy holds the users following this user. The join table row is
	// (follower_id, followed_id); this side is keyed by followed_id.
	FollowedBy []User `json:"-" gorm:"many2many:user_follows;joinForeignKey:FollowedID;joinReferences:FollowerID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFollowedBy reports whether viewerID is in the loaded follower set.
// An anonymous viewer (id 0) never follows anyone.
func (u *User) IsFollowedBy(viewerID uint) bool {
	if viewerID == 0 {
		return false
	}
	for _, follower := range u.FollowedBy {
		if follower.ID == viewerID {
			return true
		}
	}
	return false
}
