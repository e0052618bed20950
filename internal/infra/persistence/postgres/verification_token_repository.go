package postgres

import (
	"context"

	"identity/internal/domain/entity"
	"identity/internal/domain/repository"
	"identity/internal/errors"
	"identity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type verificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository creates a token repository bound to the given
// GORM handle. The repository is lookup-only; token rows are written through
// the owning user's cascade save.
func NewVerificationTokenRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

func (r *verificationTokenRepository) FindByToken(ctx context.Context, rawToken string) (*entity.VerificationToken, error) {
	var tokenModel model.VerificationTokenModel

	err := r.db.WithContext(ctx).
		Where("token = ?", rawToken).
		First(&tokenModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token by value")
	}

	return toTokenDomain(&tokenModel), nil
}

func (r *verificationTokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VerificationToken, error) {
	var tokenModel model.VerificationTokenModel

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tokenModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token by id")
	}

	return toTokenDomain(&tokenModel), nil
}
