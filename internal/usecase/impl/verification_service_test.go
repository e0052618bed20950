package impl

import (
	"context"
	"testing"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	mockRepo "identity/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerificationService_SendEmailRegistrationToken_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().Save(ctx, user).Return(nil)
	fx.expectTransaction(factory)

	var sent service.VerificationMail
	fx.codec.EXPECT().Encode(mock.AnythingOfType("string")).Return("encoded-token")
	fx.mailer.EXPECT().
		SendVerificationToken(ctx, mock.AnythingOfType("service.VerificationMail")).
		Run(func(ctx context.Context, mail service.VerificationMail) {
			sent = mail
		}).
		Return(nil)

	token, err := fx.service.SendEmailRegistrationToken(ctx, user.ID)

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, entity.TokenTypeEmailRegistration, token.Type)
	assert.Equal(t, user.ID, token.UserID)
	assert.False(t, token.IsVerified)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), token.ExpiresAt, time.Minute)
	assert.Contains(t, user.Tokens, token)

	assert.Equal(t, "alice@example.com", sent.EmailAddress)
	assert.Equal(t, "encoded-token", sent.EncodedToken)
	assert.Equal(t, entity.TokenTypeEmailRegistration, sent.TokenType)
	assert.Equal(t, "https://identity.example.com", sent.HostURL)
}

func TestVerificationService_SendEmailVerificationToken_UserMissing(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Ghost", "User", "ghost@example.com")

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)
	fx.expectTransaction(factory)

	token, err := fx.service.SendEmailVerificationToken(ctx, user.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, token)
}

func TestVerificationService_SendEmailRegistrationToken_MailFailure(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().Save(ctx, user).Return(nil)
	fx.expectTransaction(factory)

	fx.codec.EXPECT().Encode(mock.AnythingOfType("string")).Return("encoded-token")
	fx.mailer.EXPECT().
		SendVerificationToken(ctx, mock.AnythingOfType("service.VerificationMail")).
		Return(assert.AnError)

	token, err := fx.service.SendEmailRegistrationToken(ctx, user.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
	assert.Nil(t, token)
	// The token itself stays attached and persisted; a resend will pick it up.
	assert.Len(t, user.Tokens, 1)
}

func TestVerificationService_SendLostPasswordToken_ReusesActiveToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	existing := entity.NewVerificationToken(user.ID, entity.TokenTypeLostPassword, time.Hour)
	user.AddToken(existing)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	// No Save expectation: reusing the active token writes nothing.
	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.expectTransaction(factory)

	fx.codec.EXPECT().Encode(existing.Token).Return("encoded-token")
	fx.mailer.EXPECT().
		SendVerificationToken(ctx, mock.AnythingOfType("service.VerificationMail")).
		Return(nil)

	token, err := fx.service.SendLostPasswordToken(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, existing, token)
	assert.Len(t, user.Tokens, 1)
}

func TestVerificationService_SendLostPasswordToken_MintsWhenExpired(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	expired := entity.NewVerificationToken(user.ID, entity.TokenTypeLostPassword, -time.Hour)
	user.AddToken(expired)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	userRepo.EXPECT().Save(ctx, user).Return(nil)
	fx.expectTransaction(factory)

	fx.codec.EXPECT().Encode(mock.AnythingOfType("string")).Return("encoded-token")
	fx.mailer.EXPECT().
		SendVerificationToken(ctx, mock.AnythingOfType("service.VerificationMail")).
		Return(nil)

	token, err := fx.service.SendLostPasswordToken(ctx, user.Email)

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.NotEqual(t, expired.Token, token.Token)
	// The expired token is kept alongside the fresh one; nothing is deleted.
	assert.Len(t, user.Tokens, 2)
}

func TestVerificationService_SendLostPasswordToken_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.expectTransaction(factory)

	token, err := fx.service.SendLostPasswordToken(ctx, "ghost@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, token)
}

func TestVerificationService_ResendEmailVerificationToken_ReusesActiveToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	existing := entity.NewVerificationToken(user.ID, entity.TokenTypeEmailVerification, time.Hour)
	user.AddToken(existing)

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.expectTransaction(factory)

	fx.codec.EXPECT().Encode(existing.Token).Return("encoded-token")
	fx.mailer.EXPECT().
		SendVerificationToken(ctx, mock.AnythingOfType("service.VerificationMail")).
		Return(nil)

	token, err := fx.service.ResendEmailVerificationToken(ctx, user.Email)

	require.NoError(t, err)
	assert.Equal(t, existing, token)
}

func TestVerificationService_ResendEmailVerificationToken_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	user.IsVerified = true

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.expectTransaction(factory)

	token, err := fx.service.ResendEmailVerificationToken(ctx, user.Email)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	assert.Nil(t, token)
}

// expectTokenLookup wires a user owning the given token through fresh factory
// mocks so consumption flows resolve it the way the real repositories would:
// the token repo returns a detached record, the user repo the owning user.
func expectTokenLookup(t *testing.T, ctx context.Context, user *entity.User, owned *entity.VerificationToken) (*mockRepo.MockRepositoryFactory, *mockRepo.MockUserRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	tokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().TokenRepo().Return(tokenRepo)
	factory.EXPECT().UserRepo().Return(userRepo)

	record := *owned
	tokenRepo.EXPECT().FindByToken(ctx, owned.Token).Return(&record, nil)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	return factory, userRepo
}

func TestVerificationService_VerifyToken_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	owned := entity.NewVerificationToken(user.ID, entity.TokenTypeEmailVerification, time.Hour)
	user.AddToken(owned)

	factory, userRepo := expectTokenLookup(t, ctx, user, owned)
	userRepo.EXPECT().Save(ctx, user).Return(nil)

	fx.codec.EXPECT().Decode("encoded-token").Return(owned.Token, nil)
	fx.expectTransaction(factory)

	token, err := fx.service.VerifyToken(ctx, "encoded-token")

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.True(t, token.IsVerified)
	assert.True(t, user.IsVerified)
	// Plain email verification never touches the role.
	assert.True(t, user.HasRole(entity.RoleAnonymous))
}

func TestVerificationService_VerifyToken_SecondUseRejected(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	user.IsVerified = true
	owned := entity.NewVerificationToken(user.ID, entity.TokenTypeEmailVerification, time.Hour)
	owned.IsVerified = true
	user.AddToken(owned)

	factory, _ := expectTokenLookup(t, ctx, user, owned)

	fx.codec.EXPECT().Decode("encoded-token").Return(owned.Token, nil)
	fx.expectTransaction(factory)

	token, err := fx.service.VerifyToken(ctx, "encoded-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	assert.Nil(t, token)
}

func TestVerificationService_VerifyToken_ExpiredLeavesStateUntouched(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	// The boundary instant itself counts as expired.
	owned := entity.NewVerificationToken(user.ID, entity.TokenTypeEmailVerification, 0)
	user.AddToken(owned)

	factory := mockRepo.NewMockRepositoryFactory(t)
	tokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
	factory.EXPECT().TokenRepo().Return(tokenRepo)

	record := *owned
	tokenRepo.EXPECT().FindByToken(ctx, owned.Token).Return(&record, nil)

	fx.codec.EXPECT().Decode("encoded-token").Return(owned.Token, nil)
	fx.expectTransaction(factory)

	token, err := fx.service.VerifyToken(ctx, "encoded-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.Nil(t, token)
	assert.False(t, owned.IsVerified)
	assert.False(t, user.IsVerified)
}

func TestVerificationService_VerifyToken_MalformedEncoding(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.codec.EXPECT().Decode("%%%").Return("", service.ErrMalformedToken)

	token, err := fx.service.VerifyToken(ctx, "%%%")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenDecodeFailed)
	assert.Nil(t, token)
}

func TestVerificationService_VerifyToken_UnknownToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	tokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
	factory.EXPECT().TokenRepo().Return(tokenRepo)

	tokenRepo.EXPECT().FindByToken(ctx, "missing-raw").Return(nil, repository.ErrTokenNotFound)

	fx.codec.EXPECT().Decode("encoded-token").Return("missing-raw", nil)
	fx.expectTransaction(factory)

	token, err := fx.service.VerifyToken(ctx, "encoded-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
	assert.Nil(t, token)
}

func TestVerificationService_ResetPassword_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	user.HashedPassword = "old-digest"
	owned := entity.NewVerificationToken(user.ID, entity.TokenTypeLostPassword, time.Hour)
	user.AddToken(owned)

	factory, userRepo := expectTokenLookup(t, ctx, user, owned)
	userRepo.EXPECT().Save(ctx, user).Return(nil)

	fx.codec.EXPECT().Decode("encoded-token").Return(owned.Token, nil)
	fx.hasher.EXPECT().Hash("NewPassword1", user.ID).Return("new-digest", nil)
	fx.expectTransaction(factory)

	token, err := fx.service.ResetPassword(ctx, "encoded-token", "NewPassword1")

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.True(t, token.IsVerified)
	assert.Equal(t, "new-digest", user.HashedPassword)
	assert.True(t, user.IsVerified)
	// A password-backed reset is what promotes an anonymous account.
	assert.True(t, user.HasRole(entity.RoleAuthenticated))
}

func TestVerificationService_ResetPassword_TokenAlreadyUsed(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	user.HashedPassword = "old-digest"
	owned := entity.NewVerificationToken(user.ID, entity.TokenTypeLostPassword, time.Hour)
	owned.IsVerified = true
	user.AddToken(owned)

	factory, _ := expectTokenLookup(t, ctx, user, owned)

	fx.codec.EXPECT().Decode("encoded-token").Return(owned.Token, nil)
	fx.expectTransaction(factory)

	token, err := fx.service.ResetPassword(ctx, "encoded-token", "NewPassword1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	assert.Nil(t, token)
	assert.Equal(t, "old-digest", user.HashedPassword)
}

func TestVerificationService_ResetPassword_VerifiedUserStillAllowed(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := entity.NewUser("Alice", "Smith", "alice@example.com")
	user.IsVerified = true
	user.Role = entity.RoleAuthenticated
	owned := entity.NewVerificationToken(user.ID, entity.TokenTypeLostPassword, time.Hour)
	user.AddToken(owned)

	factory, userRepo := expectTokenLookup(t, ctx, user, owned)
	userRepo.EXPECT().Save(ctx, user).Return(nil)

	fx.codec.EXPECT().Decode("encoded-token").Return(owned.Token, nil)
	fx.hasher.EXPECT().Hash("NewPassword1", user.ID).Return("new-digest", nil)
	fx.expectTransaction(factory)

	token, err := fx.service.ResetPassword(ctx, "encoded-token", "NewPassword1")

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.True(t, token.IsVerified)
	assert.Equal(t, "new-digest", user.HashedPassword)
	assert.True(t, user.HasRole(entity.RoleAuthenticated))
}
