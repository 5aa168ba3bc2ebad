package services

import (
	"errors"
	"time"

	"conduit-api/config"
	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email has already been taken")
	ErrUsernameTaken      = errors.New("username has already been taken")
	ErrInvalidCredentials = errors.New("email or password is invalid")
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.UserAuth, error)
	Login(req models.LoginRequest) (*models.UserAuth, error)
	GetCurrentUser(userID uint) (*models.UserAuth, error)
	UpdateUser(userID uint, req models.UpdateUserRequest) (*models.UserAuth, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.UserAuth, error) {
	if _, err := s.userRepo.GetByEmail(req.User.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByUsername(req.User.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	image := req.User.Image
	if image == "" {
		image = models.DefaultUserImage
	}

	user := &models.User{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: string(hashedPassword),
		Bio:      req.User.Bio,
		Image:    image,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

func (s *authService) Login(req models.LoginRequest) (*models.UserAuth, error) {
	user, err := s.userRepo.GetByEmail(req.User.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.User.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *authService) GetCurrentUser(userID uint) (*models.UserAuth, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return s.authResponse(user)
}

func (s *authService) UpdateUser(userID uint, req models.UpdateUserRequest) (*models.UserAuth, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.User.Email != "" && req.User.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(req.User.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = req.User.Email
	}
	if req.User.Username != "" && req.User.Username != user.Username {
		if _, err := s.userRepo.GetByUsername(req.User.Username); err == nil {
			return nil, ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = req.User.Username
	}
	if req.User.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}
	if req.User.Bio != "" {
		user.Bio = req.User.Bio
	}
	if req.User.Image != "" {
		user.Image = req.User.Image
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

func (s *authService) authResponse(user *models.User) (*models.UserAuth, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	auth := models.NewUserAuth(*user, token)
	return &auth, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(config.JWTSecret)
}
