package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/middleware/auth"
	"reelcritic/internal/api/models"
	"reelcritic/internal/api/repository"
	"reelcritic/internal/cache"
	"reelcritic/internal/config"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrNameInUse          = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the access-token payload.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID int64) error
	CurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo       repository.UserRepository
	sessions       *cache.SessionStore
	jwtSecret      string
	accessTokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions *cache.SessionStore, cfg *config.Config) AuthService {
	return &authService{
		userRepo:       userRepo,
		sessions:       sessions,
		jwtSecret:      cfg.JWTSecret,
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

// Register creates a new account and opens a session for it.
func (s *authService) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailInUse
	}
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrNameInUse
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	profilePicture := req.ProfilePicture
	if profilePicture == "" {
		profilePicture = fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(req.Username))
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashedPassword,
		ProfilePicture: profilePicture,
		Bio:            req.Bio,
		MemberSince:    time.Now().Format("January 2006"),
		FavoriteGenres: req.FavoriteGenres,
		Role:           "user",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

// Login authenticates by email and password and opens a session.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// dummy compare so unknown emails take as long as bad passwords
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

func (s *authService) openSession(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  *dto.FromModelToUserResponse(user, false),
	}, nil
}

// Logout tears the session down.
func (s *authService) Logout(ctx context.Context, userID int64) error {
	return s.sessions.Clear(ctx, userID)
}

// CurrentUser serves the session snapshot, falling back to the database when
// the session has expired but the token is still valid.
func (s *authService) CurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.sessions.Current(ctx, userID)
	if errors.Is(err, cache.ErrNoSession) {
		user, err = s.userRepo.FindByID(userID)
	}
	if err != nil {
		return nil, err
	}
	return dto.FromModelToUserResponse(user, false), nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies an access token.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
