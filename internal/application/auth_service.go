package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/projecttasks/backend/internal/domain/entity"
	"github.com/projecttasks/backend/internal/domain/repository"
	"github.com/projecttasks/backend/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = repository.ErrEmailTaken
)

// AuthService issues bearer tokens for registered users. The token carries
// the user's email as subject; handlers pass that email into every
// ownership-scoped call.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

type AuthResult struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	UserID      int64  `json:"userId"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{FullName: in.FullName, Email: in.Email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		s.Logger.WithError(err).WithField("email", in.Email).Error("user create failed")
		return nil, err
	}
	return s.issue(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, _, err := s.JWT.GenerateToken(u.Email, u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, err
	}
	return &AuthResult{AccessToken: token, TokenType: "Bearer", UserID: u.ID}, nil
}
