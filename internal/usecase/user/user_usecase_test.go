package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository/memory"
)

func TestCreateUser_DefaultsAvatarAndAssignsID(t *testing.T) {
	uc := NewUserUseCase(memory.NewUserRepository())

	created, err := uc.CreateUser(context.Background(), &CreateUserRequest{
		Username:    "moon_chad",
		DisplayName: "Moon Chad",
		Bio:         "gm",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "moon_chad", created.Username)
	assert.Equal(t, "https://picsum.photos/seed/moon_chad/400", created.AvatarURL)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateUser_KeepsProvidedAvatar(t *testing.T) {
	uc := NewUserUseCase(memory.NewUserRepository())

	created, err := uc.CreateUser(context.Background(), &CreateUserRequest{
		Username:    "moon_chad",
		DisplayName: "Moon Chad",
		AvatarURL:   "https://example.com/me.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", created.AvatarURL)
}

func TestCreateUser_DuplicateUsernameRejected(t *testing.T) {
	uc := NewUserUseCase(memory.NewUserRepository())
	ctx := context.Background()

	first, err := uc.CreateUser(ctx, &CreateUserRequest{
		Username:    "moon_chad",
		DisplayName: "Moon Chad",
		Bio:         "original",
	})
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, &CreateUserRequest{
		Username:    "moon_chad",
		DisplayName: "Impostor",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// Original profile untouched
	got, err := uc.GetUser(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Bio)
	assert.Equal(t, "Moon Chad", got.DisplayName)
}

func TestUpdateUser_PartialUpdatePreservesOtherFields(t *testing.T) {
	uc := NewUserUseCase(memory.NewUserRepository())
	ctx := context.Background()

	created, err := uc.CreateUser(ctx, &CreateUserRequest{
		Username:    "moon_chad",
		DisplayName: "Moon Chad",
		Bio:         "gm",
	})
	require.NoError(t, err)

	newBio := "gn"
	updated, err := uc.UpdateUser(ctx, &UpdateUserRequest{
		UserID: created.ID,
		Bio:    &newBio,
	})
	require.NoError(t, err)
	assert.Equal(t, "gn", updated.Bio)
	assert.Equal(t, "Moon Chad", updated.DisplayName)
	assert.Equal(t, created.AvatarURL, updated.AvatarURL)
}

func TestUpdateUser_EmptyIDTargetsDefaultUser(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(context.Background(), &domain.User{
		ID:          domain.DefaultUserID,
		Username:    "anon_degen",
		DisplayName: "Anon Degen",
	}))
	uc := NewUserUseCase(repo)

	name := "Based Anon"
	updated, err := uc.UpdateUser(context.Background(), &UpdateUserRequest{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserID, updated.ID)
	assert.Equal(t, "Based Anon", updated.DisplayName)
}

func TestUpdateUser_UnknownIDReturnsNotFound(t *testing.T) {
	uc := NewUserUseCase(memory.NewUserRepository())

	name := "Nobody"
	_, err := uc.UpdateUser(context.Background(), &UpdateUserRequest{
		UserID:      "ghost",
		DisplayName: &name,
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUser_UnknownIDReturnsNotFound(t *testing.T) {
	uc := NewUserUseCase(memory.NewUserRepository())

	_, err := uc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
