// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"identity/config"
	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationService implements the VerificationUsecase interface. Every
// state-changing operation runs its read-check-write sequence inside one
// transaction; the transaction's isolation is what makes two concurrent
// consumptions of the same token resolve to one success and one
// AlreadyVerified rejection. Mail is dispatched only after commit.
type verificationService struct {
	txManager repository.TransactionManager
	codec     service.TokenCodec
	hasher    service.PasswordHasher
	mailer    service.MailGateway
	tokenTTL  time.Duration
	hostURL   string
	logger    *slog.Logger
}

// VerificationServiceParams holds dependencies for the verification service, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Codec     service.TokenCodec
	Hasher    service.PasswordHasher
	Mailer    service.MailGateway
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	var ttl time.Duration
	var hostURL string
	if params.Config != nil && params.Config.Auth != nil {
		ttl = params.Config.Auth.TokenTTL
		hostURL = params.Config.Auth.HostNameURL
	}

	return &verificationService{
		txManager: params.TxManager,
		codec:     params.Codec,
		hasher:    params.Hasher,
		mailer:    params.Mailer,
		tokenTTL:  ttl,
		hostURL:   hostURL,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendEmailVerificationToken mints and mails an emailVerification token.
func (srv *verificationService) SendEmailVerificationToken(ctx context.Context, userID uuid.UUID) (*entity.VerificationToken, error) {
	return srv.issueTokenForUser(ctx, userID, entity.TokenTypeEmailVerification)
}

// SendEmailRegistrationToken mints and mails an emailRegistration token.
func (srv *verificationService) SendEmailRegistrationToken(ctx context.Context, userID uuid.UUID) (*entity.VerificationToken, error) {
	return srv.issueTokenForUser(ctx, userID, entity.TokenTypeEmailRegistration)
}

func (srv *verificationService) issueTokenForUser(ctx context.Context, userID uuid.UUID, tokenType entity.TokenType) (*entity.VerificationToken, error) {
	srv.log(ctx).Info("Issuing verification token", slog.Any("userID", userID), slog.Any("tokenType", tokenType))

	var user *entity.User
	var token *entity.VerificationToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("token issue failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		token = entity.NewVerificationToken(found.ID, tokenType, srv.tokenTTL)
		found.AddToken(token)

		if err := userRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save user with new token")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute token issue transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	if err := srv.dispatchToken(ctx, user, token); err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Verification token issued", slog.Any("tokenID", token.ID), slog.Any("tokenType", tokenType))

	return token, nil
}

// SendLostPasswordToken mails the user's lost-password token, reusing the
// active one so a user who loses the email can request it again without
// invalidating the original link.
func (srv *verificationService) SendLostPasswordToken(ctx context.Context, email string) (*entity.VerificationToken, error) {
	srv.log(ctx).Info("Lost-password token requested", slog.String("email", email))

	var user *entity.User
	var token *entity.VerificationToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("lost-password request failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		token = found.ActiveToken(entity.TokenTypeLostPassword, time.Now())
		if token == nil {
			token = entity.NewVerificationToken(found.ID, entity.TokenTypeLostPassword, srv.tokenTTL)
			found.AddToken(token)

			if err := userRepo.Save(ctx, found); err != nil {
				return errors.Wrap(err, "failed to save user with lost-password token")
			}
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Lost-password request rejected", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.dispatchToken(ctx, user, token); err != nil {
		return nil, err
	}

	return token, nil
}

// ResendEmailVerificationToken re-mails the active emailVerification token,
// minting one only when none is active.
func (srv *verificationService) ResendEmailVerificationToken(ctx context.Context, email string) (*entity.VerificationToken, error) {
	srv.log(ctx).Info("Verification token resend requested", slog.String("email", email))

	var user *entity.User
	var token *entity.VerificationToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("verification resend failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		if found.IsVerified {
			return domainerrors.ErrAlreadyVerified.WrapMessage("user is already verified")
		}

		token = found.ActiveToken(entity.TokenTypeEmailVerification, time.Now())
		if token == nil {
			token = entity.NewVerificationToken(found.ID, entity.TokenTypeEmailVerification, srv.tokenTTL)
			found.AddToken(token)

			if err := userRepo.Save(ctx, found); err != nil {
				return errors.Wrap(err, "failed to save user with verification token")
			}
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Verification resend rejected", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.dispatchToken(ctx, user, token); err != nil {
		return nil, err
	}

	return token, nil
}

// VerifyToken consumes an encoded token. Both the token and its owning user
// are marked verified; the role is deliberately left untouched, since plain
// email verification does not prove password possession.
func (srv *verificationService) VerifyToken(ctx context.Context, encodedToken string) (*entity.VerificationToken, error) {
	rawToken, err := srv.codec.Decode(encodedToken)
	if err != nil {
		return nil, domainerrors.ErrTokenDecodeFailed.WrapMessage("token verification failed")
	}

	var token *entity.VerificationToken

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owned, user, err := srv.loadUsableToken(ctx, repoFactory, rawToken)
		if err != nil {
			return err
		}
		if owned.IsVerified || user.IsVerified {
			return domainerrors.ErrAlreadyVerified.WrapMessage("token verification failed")
		}

		owned.IsVerified = true
		user.IsVerified = true

		if err := repoFactory.UserRepo().Save(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save verified user")
		}
		token = owned

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token verification rejected", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Token verified", slog.Any("tokenID", token.ID), slog.Any("tokenType", token.Type))

	return token, nil
}

// ResetPassword consumes an encoded lost-password token, stores the new
// password digest, marks the user verified and promotes an anonymous user to
// authenticated. Unlike VerifyToken, an already-verified user may reset: only
// the token's own single-use marker gates the operation.
func (srv *verificationService) ResetPassword(ctx context.Context, encodedToken, newPassword string) (*entity.VerificationToken, error) {
	rawToken, err := srv.codec.Decode(encodedToken)
	if err != nil {
		return nil, domainerrors.ErrTokenDecodeFailed.WrapMessage("password reset failed")
	}

	var token *entity.VerificationToken

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owned, user, err := srv.loadUsableToken(ctx, repoFactory, rawToken)
		if err != nil {
			return err
		}
		if owned.IsVerified {
			return domainerrors.ErrAlreadyVerified.WrapMessage("password reset token already used")
		}

		hashed, err := srv.hasher.Hash(newPassword, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		owned.IsVerified = true
		user.HashedPassword = hashed
		user.IsVerified = true
		if user.HasRole(entity.RoleAnonymous) {
			user.Role = entity.RoleAuthenticated
		}

		if err := repoFactory.UserRepo().Save(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save user after password reset")
		}
		token = owned

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset rejected", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Password reset completed", slog.Any("tokenID", token.ID))

	return token, nil
}

// loadUsableToken resolves a raw token to the instance owned by its user so
// that mutations flow through the cascade save. Expiry is checked here, at
// use time, and an expired token is rejected without touching its state.
func (srv *verificationService) loadUsableToken(ctx context.Context, repoFactory repository.RepositoryFactory, rawToken string) (*entity.VerificationToken, *entity.User, error) {
	record, err := repoFactory.TokenRepo().FindByToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, nil, domainerrors.ErrTokenNotFound.WrapMessage("no matching verification token")
		}

		return nil, nil, errors.Wrap(err, "failed to find verification token")
	}
	if record.Expired(time.Now()) {
		return nil, nil, domainerrors.ErrTokenExpired.WrapMessage("verification token past its TTL")
	}

	user, err := repoFactory.UserRepo().FindByID(ctx, record.UserID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load token owner")
	}

	for _, owned := range user.Tokens {
		if owned.ID == record.ID {
			return owned, user, nil
		}
	}

	// The token row exists but the owning user no longer carries it; treat
	// as not found rather than mutating a detached instance.
	return nil, nil, domainerrors.ErrTokenNotFound.WrapMessage("token not attached to its owner")
}

// dispatchToken hands the token to the mail gateway after the state change
// has committed. A failure surfaces to the caller: the token is persisted
// but useless unsent, and a later resend will reuse it.
func (srv *verificationService) dispatchToken(ctx context.Context, user *entity.User, token *entity.VerificationToken) error {
	mail := service.VerificationMail{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.Email,
		EncodedToken: srv.codec.Encode(token.Token),
		TokenType:    token.Type,
		ExpiresAt:    token.ExpiresAt,
		HostURL:      srv.hostURL,
	}

	if err := srv.mailer.SendVerificationToken(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to dispatch verification mail",
			slog.String("email", user.Email), slog.Any("tokenType", token.Type), slog.Any("error", err))

		return domainerrors.ErrMailDeliveryFailed.WrapMessage("verification mail dispatch failed")
	}

	return nil
}
