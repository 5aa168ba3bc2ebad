package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Follow(profile *models.User, follower *models.User) error
	Unfollow(profile *models.User, follower *models.User) error
	GetFollowedIDs(followerID uint) ([]uint, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

// GetByUsername loads the profile with its follower set so viewer-relative
// following can be derived without a second query.
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).
		Preload("FollowedBy").
		First(&user).Error
	return &user, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Follow(profile *models.User, follower *models.User) error {
	return r.db.Model(profile).Association("FollowedBy").Append(follower)
}

func (r *userRepository) Unfollow(profile *models.User, follower *models.User) error {
	return r.db.Model(profile).Association("FollowedBy").Delete(follower)
}

// GetFollowedIDs returns the ids of the users followerID follows, for the
// personal feed query.
func (r *userRepository) GetFollowedIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("user_follows").
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}
