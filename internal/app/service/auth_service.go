package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"code_arena/internal/common"
	"code_arena/internal/common/security"
	"code_arena/internal/domain/model"
	"code_arena/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AuthService struct {
	userRepo  repository.UserRepository
	tokenAuth *jwtauth.JWTAuth
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokenAuth *jwtauth.JWTAuth, tokenTTL time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, tokenAuth: tokenAuth, tokenTTL: tokenTTL}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        model.UserSummary `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("email, username and password are required: %w", common.ErrBadRequest)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Provider:     model.ProviderEmail,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on duplicate email/username
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respondWithToken(user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized // Generic message for security
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	return s.respondWithToken(user)
}

// Authenticate resolves a verified token subject (email) to a user.
func (s *AuthService) Authenticate(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// OAuthStub fabricates the fixed response of the unimplemented OAuth flow.
// Nothing is persisted and the returned token does not validate; the endpoint
// exists only to keep the provider buttons wired. Real provider verification
// is required before this can be treated as authentication.
func (s *AuthService) OAuthStub(provider string) *AuthResponse {
	return &AuthResponse{
		AccessToken: "dummy-" + provider + "-token",
		TokenType:   "bearer",
		User: model.UserSummary{
			ID:       uuid.NewString(),
			Email:    "user@" + provider + ".com",
			Username: provider + "user",
			FullName: oauthStubName(provider),
		},
	}
}

func oauthStubName(provider string) string {
	switch provider {
	case model.ProviderGoogle:
		return "Google User"
	case model.ProviderGithub:
		return "GitHub User"
	case model.ProviderLinkedin:
		return "LinkedIn User"
	}
	return "OAuth User"
}

func (s *AuthService) respondWithToken(user *model.User) (*AuthResponse, error) {
	token, err := security.GenerateToken(s.tokenAuth, user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Summary(),
	}, nil
}
