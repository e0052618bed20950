package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"identity/config"
	"identity/internal/domain/repository"
	mockRepo "identity/internal/mocks/repository"
	mockSvc "identity/internal/mocks/service"
	mockUsecase "identity/internal/mocks/usecase"
	"identity/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		HostNameURL: "https://identity.example.com",
		TokenTTL:    24 * time.Hour,
		SecretSalt:  "test-salt",
	}

	return cfg
}

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service   usecase.VerificationUsecase
	txManager *mockRepo.MockTransactionManager
	codec     *mockSvc.MockTokenCodec
	hasher    *mockSvc.MockPasswordHasher
	mailer    *mockSvc.MockMailGateway
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	codec := mockSvc.NewMockTokenCodec(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailer := mockSvc.NewMockMailGateway(t)

	service := NewVerificationService(VerificationServiceParams{
		TxManager: txManager,
		Codec:     codec,
		Hasher:    hasher,
		Mailer:    mailer,
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
	})

	return verificationServiceFixtures{
		service:   service,
		txManager: txManager,
		codec:     codec,
		hasher:    hasher,
		mailer:    mailer,
	}
}

// expectTransaction routes the transactional callback through the given
// factory and propagates the callback's error, mirroring a real commit or
// rollback decision.
func (f verificationServiceFixtures) expectTransaction(factory *mockRepo.MockRepositoryFactory) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	verification *mockUsecase.MockVerificationUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	verification := mockUsecase.NewMockVerificationUsecase(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		Verification: verification,
		Config:       newTestConfig(),
		Logger:       newTestLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		verification: verification,
	}
}

func (f userServiceFixtures) expectTransaction(factory *mockRepo.MockRepositoryFactory) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
