package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// CreateUserRequest represents profile creation
type CreateUserRequest struct {
	Username      string `json:"username" binding:"required"`
	DisplayName   string `json:"displayName" binding:"required"`
	Bio           string `json:"bio"`
	AvatarURL     string `json:"avatarUrl"`
	WalletAddress string `json:"walletAddress" binding:"omitempty,walletaddr"`
}

// UpdateUserRequest represents a partial profile update; nil fields are
// left unchanged.
type UpdateUserRequest struct {
	UserID        string  `json:"userId"`
	DisplayName   *string `json:"displayName"`
	Bio           *string `json:"bio"`
	AvatarURL     *string `json:"avatarUrl"`
	WalletAddress *string `json:"walletAddress" binding:"omitempty,walletaddr"`
}

// GetUser returns the stored profile for an id.
func (uc *UserUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// CreateUser registers a profile. Username uniqueness is enforced here,
// at creation time only.
func (uc *UserUseCase) CreateUser(ctx context.Context, req *CreateUserRequest) (*domain.User, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, req.Username)
	if err == nil && existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	avatarURL := req.AvatarURL
	if avatarURL == "" {
		avatarURL = fmt.Sprintf("https://picsum.photos/seed/%s/400", req.Username)
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      req.Username,
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		AvatarURL:     avatarURL,
		WalletAddress: req.WalletAddress,
		CreatedAt:     time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of the request. Username is not
// updatable, so uniqueness is not re-checked here.
func (uc *UserUseCase) UpdateUser(ctx context.Context, req *UpdateUserRequest) (*domain.User, error) {
	userID := req.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.WalletAddress != nil {
		user.WalletAddress = *req.WalletAddress
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
