package impl

import (
	"context"
	"testing"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	mockRepo "identity/internal/mocks/repository"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "Password123!",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	fx.hasher.EXPECT().
		Hash(input.Password, mock.AnythingOfType("uuid.UUID")).
		Return("digest", nil)
	userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.expectTransaction(factory)

	issued := entity.NewVerificationToken(uuid.New(), entity.TokenTypeEmailRegistration, time.Hour)
	fx.verification.EXPECT().
		SendEmailRegistrationToken(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(issued, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "digest", output.User.HashedPassword)
	assert.NotEmpty(t, output.User.SessionToken)
	assert.True(t, output.User.HasRole(entity.RoleAnonymous))
	assert.False(t, output.User.IsVerified)
	assert.Equal(t, issued, output.Token)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "taken@example.com",
		Password:  "Password123!",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	fx.hasher.EXPECT().
		Hash(input.Password, mock.AnythingOfType("uuid.UUID")).
		Return("digest", nil)
	userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)
	fx.expectTransaction(factory)

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUser)
	assert.Nil(t, output)
}

func TestUserService_RegisterUser_TokenIssueFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "Password123!",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	fx.hasher.EXPECT().
		Hash(input.Password, mock.AnythingOfType("uuid.UUID")).
		Return("digest", nil)
	userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.expectTransaction(factory)

	fx.verification.EXPECT().
		SendEmailRegistrationToken(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, domainerrors.ErrMailDeliveryFailed.WrapMessage("verification mail dispatch failed"))

	output, err := fx.service.RegisterUser(ctx, input)

	// The account commit stands; the caller learns the mail never went out.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
	assert.Nil(t, output)
}
