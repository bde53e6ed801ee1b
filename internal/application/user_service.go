package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/aryaduta/go-blog-api/internal/domain/entity"
	repo "github.com/aryaduta/go-blog-api/internal/domain/repository"
	"github.com/aryaduta/go-blog-api/pkg/helpers"
	"github.com/aryaduta/go-blog-api/pkg/schema"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
)

type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

// Register creates an account with a bcrypt-hashed credential and issues a
// token for it. A duplicate username surfaces as ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, in schema.SignupInput) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{Username: in.Username, Password: hash, Name: in.Name}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", in.Username).Error("create user failed")
		}
		return nil, "", err
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	return u, token, nil
}

// Login validates username/password and issues a token. An unknown
// username is reported distinctly from a bad password.
func (s *UserService) Login(ctx context.Context, in schema.SigninInput) (*entity.User, string, error) {
	u, err := s.Repo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, in.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", err
	}
	return u, token, nil
}
