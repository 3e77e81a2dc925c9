package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"community-board/internal/config"
	"community-board/internal/domain"
	"community-board/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid user id or password")
	ErrHandleExists       = errors.New("user id already exists")
	ErrNicknameExists     = errors.New("nickname already exists")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrAccountBanned      = errors.New("account is banned")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInputTooLong       = errors.New("input exceeds the length limit")
)

const (
	maxHandleLen   = 16
	maxPasswordLen = 20
	maxNicknameLen = 16
)

type Service interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error)
	IssueToken(user *domain.User) (string, error)
	ValidateAccessToken(token string) (*Claims, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type Claims struct {
	UserID   int64  `json:"uid"`
	Nickname string `json:"nickname"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Service {
	return &service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *service) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if len(input.Handle) > maxHandleLen || len(input.Password) > maxPasswordLen || len(input.Nickname) > maxNicknameLen {
		return nil, ErrInputTooLong
	}

	exists, err := s.userRepo.ExistsByHandle(ctx, input.Handle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrHandleExists
	}

	exists, err = s.userRepo.ExistsByNickname(ctx, input.Nickname)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNicknameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Handle:       input.Handle,
		PasswordHash: string(hashedPassword),
		Nickname:     input.Nickname,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error) {
	user, err := s.userRepo.GetByHandle(ctx, input.Handle)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", ErrAccountDeactivated
	}
	if user.IsBanned {
		return nil, "", ErrAccountBanned
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Nickname: user.Nickname,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Handle,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetUserByID resolves the authenticated user; withdrawn accounts read as
// absent and fail authentication upstream.
func (s *service) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
