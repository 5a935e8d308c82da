package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// Constants for common error messages
const (
	ErrMsgUserNotFound       = "user not found"
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgAccountSuspended   = "account suspended"
	ErrMsgInternalServer     = "internal server error"
)

// AuthUsecase implements the IAuthUseCase interface.
type AuthUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	tokenService  usecasecontract.ITokenService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	tokenService usecasecontract.ITokenService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Signup handles member registration. New accounts always get the member role.
func (uc *AuthUsecase) Signup(ctx context.Context, email, password, name, location string) (*entity.User, string, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, "", err
	}
	if name == "" {
		return nil, "", errors.New("name is required")
	}
	if err := uc.validator.ValidateLocation(location); err != nil {
		return nil, "", err
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && err.Error() != ErrMsgUserNotFound {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", errors.New(ErrMsgInternalServer)
	}
	if existing != nil {
		return nil, "", errors.New(ErrMsgEmailTaken)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		Role:         entity.DefaultRole(),
		Location:     location,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		// The unique email index can race the lookup above.
		if err.Error() == ErrMsgEmailTaken {
			return nil, "", err
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to register user")
	}

	token, err := uc.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to issue token: %v", err)
		return nil, "", errors.New(ErrMsgInternalServer)
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the identical error so callers cannot enumerate accounts.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err.Error() == ErrMsgUserNotFound {
			return nil, "", errors.New(ErrMsgInvalidCredentials)
		}
		uc.logger.Errorf("failed to look up user by email: %v", err)
		return nil, "", errors.New(ErrMsgInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", errors.New(ErrMsgInvalidCredentials)
	}

	if user.Status == entity.UserStatusSuspended {
		return nil, "", errors.New(ErrMsgAccountSuspended)
	}

	token, err := uc.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to issue token: %v", err)
		return nil, "", errors.New(ErrMsgInternalServer)
	}
	return user, token, nil
}

// LoginWithOAuth signs in a Google-authenticated user, creating a member
// account on first login. OAuth accounts get an unguessable random password.
func (uc *AuthUsecase) LoginWithOAuth(ctx context.Context, name, email string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err.Error() != ErrMsgUserNotFound {
			uc.logger.Errorf("failed to look up OAuth user: %v", err)
			return nil, "", errors.New(ErrMsgInternalServer)
		}
		hashed, hashErr := uc.hasher.HashPassword(uc.uuidGenerator.NewUUID())
		if hashErr != nil {
			uc.logger.Errorf("failed to hash OAuth placeholder password: %v", hashErr)
			return nil, "", errors.New(ErrMsgInternalServer)
		}
		user = &entity.User{
			ID:           uc.uuidGenerator.NewUUID(),
			Email:        email,
			PasswordHash: hashed,
			Name:         name,
			Role:         entity.DefaultRole(),
			Location:     "Other",
			Status:       entity.UserStatusActive,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create OAuth user: %v", err)
			return nil, "", errors.New(ErrMsgInternalServer)
		}
	}

	if user.Status == entity.UserStatusSuspended {
		return nil, "", errors.New(ErrMsgAccountSuspended)
	}

	token, err := uc.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to issue token: %v", err)
		return nil, "", errors.New(ErrMsgInternalServer)
	}
	return user, token, nil
}

// GetUserByID fetches a user profile.
func (uc *AuthUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies profile edits for the current user. Only a fixed set
// of fields may be changed; location is re-validated against the allow-list.
func (uc *AuthUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	allowed := map[string]bool{"name": true, "bio": true, "location": true, "profile_pic": true}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, errors.New("no updatable fields provided")
	}
	if loc, ok := filtered["location"].(string); ok {
		if err := uc.validator.ValidateLocation(loc); err != nil {
			return nil, err
		}
	}
	return uc.userRepo.UpdateUser(ctx, userID, filtered)
}
