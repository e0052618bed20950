package usecase

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationUsecase is the verification-token workflow. Each operation is
// invoked synchronously per request and executes its read-check-write
// sequence inside a single transaction; mail is dispatched after commit.
//
// Per (user, token type) the token moves NoActiveToken -> ActiveToken ->
// Consumed, with expiry evaluated at use time rather than as an explicit
// transition.
type VerificationUsecase interface {
	// SendEmailVerificationToken mints an emailVerification token for the
	// user, persists it and mails it.
	SendEmailVerificationToken(ctx context.Context, userID uuid.UUID) (*entity.VerificationToken, error)

	// SendEmailRegistrationToken mints an emailRegistration token for the
	// user, persists it and mails it.
	SendEmailRegistrationToken(ctx context.Context, userID uuid.UUID) (*entity.VerificationToken, error)

	// SendLostPasswordToken looks the user up by email and mails their
	// lost-password token, reusing the active one when present so repeated
	// requests stay idempotent and earlier links keep working.
	SendLostPasswordToken(ctx context.Context, email string) (*entity.VerificationToken, error)

	// ResendEmailVerificationToken re-mails the user's active
	// emailVerification token, minting a new one only when none is active.
	// Fails for unknown emails and for already-verified users.
	ResendEmailVerificationToken(ctx context.Context, email string) (*entity.VerificationToken, error)

	// VerifyToken consumes an encoded token: the token and its owning user
	// are marked verified. The user's role is deliberately left untouched;
	// only a password-backed reset promotes it.
	VerifyToken(ctx context.Context, encodedToken string) (*entity.VerificationToken, error)

	// ResetPassword consumes an encoded token, stores the new password hash,
	// marks the user verified and promotes an anonymous user to
	// authenticated.
	ResetPassword(ctx context.Context, encodedToken, newPassword string) (*entity.VerificationToken, error)
}
