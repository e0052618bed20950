package service

import (
	"context"
	"time"

	"identity/internal/domain/entity"
)

// VerificationMail is the model handed to the mail gateway for every
// token-bearing message. It carries everything needed to address the user
// and to build the link embedded in the email body.
type VerificationMail struct {
	FirstName    string
	LastName     string
	EmailAddress string
	EncodedToken string
	TokenType    entity.TokenType
	ExpiresAt    time.Time
	HostURL      string // Base URL for links, from configuration.
}

// MailGateway delivers verification-token notifications. Delivery mechanics
// are out of scope for the core: the workflow only hands over the model
// after its own state change has committed. Issue and resend operations
// surface a send failure to the caller, since an unsent token is useless;
// the persisted token survives and a later resend reuses it.
type MailGateway interface {
	SendVerificationToken(ctx context.Context, mail VerificationMail) error
}
