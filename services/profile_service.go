package services

import (
	"errors"

	"conduit-api/models"
	"conduit-api/repositories"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type ProfileService interface {
	GetProfile(username string, viewerID uint) (*models.Profile, error)
	Follow(username string, viewerID uint) (*models.Profile, error)
	Unfollow(username string, viewerID uint) (*models.Profile, error)
}

type profileService struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetProfile(username string, viewerID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	profile := models.NewProfile(*user, viewerID)
	return &profile, nil
}

func (s *profileService) Follow(username string, viewerID uint) (*models.Profile, error) {
	return s.setFollow(username, viewerID, true)
}

func (s *profileService) Unfollow(username string, viewerID uint) (*models.Profile, error) {
	return s.setFollow(username, viewerID, false)
}

// setFollow is idempotent: following an already-followed profile or
// unfollowing a non-followed one leaves the set unchanged.
func (s *profileService) setFollow(username string, viewerID uint, follow bool) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	if user.ID == viewerID {
		return nil, ErrSelfFollow
	}

	if user.IsFollowedBy(viewerID) != follow {
		follower, err := s.userRepo.GetByID(viewerID)
		if err != nil {
			return nil, err
		}
		if follow {
			err = s.userRepo.Follow(user, follower)
		} else {
			err = s.userRepo.Unfollow(user, follower)
		}
		if err != nil {
			return nil, err
		}
	}

	return s.GetProfile(username, viewerID)
}
