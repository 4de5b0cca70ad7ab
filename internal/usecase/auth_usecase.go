package usecase

import (
	"context"
	"time"

	"giglance/internal/domain/entity"
	"giglance/internal/domain/repository"
	"giglance/pkg/errors"
	"giglance/pkg/logger"
)

type AuthUseCase struct {
	profileRepo  repository.ProfileRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		profileRepo:  profileRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type AuthResult struct {
	Profile      *entity.Profile
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Admin accounts are provisioned out of band, never via signup
	if input.Role != entity.RoleBuyer && input.Role != entity.RoleSeller {
		return nil, errors.BadRequest("Role must be buyer or seller", nil)
	}

	existing, err := uc.profileRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	profile := &entity.Profile{
		ID:        uid,
		Email:     input.Email,
		FullName:  input.FullName,
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		if cleanupErr := uc.firebaseAuth.DeleteUser(ctx, uid); cleanupErr != nil {
			logger.Error("Failed to clean up auth user %s after profile error: %v", uid, cleanupErr)
		}
		return nil, errors.Internal("Failed to create profile record", err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Profile:      profile,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("Profile", err)
	}

	return &AuthResult{
		Profile:      profile,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	token, newRefreshToken, err := uc.firebaseAuth.RefreshIdToken(refreshToken)
	if err != nil {
		return "", "", errors.Unauthorized("Invalid refresh token", err)
	}

	return token, newRefreshToken, nil
}

func (uc *AuthUseCase) GetProfileByID(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Profile", err)
	}
	return profile, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	// ID tokens are stateless; logout is handled client side by
	// discarding the token.
	return nil
}
