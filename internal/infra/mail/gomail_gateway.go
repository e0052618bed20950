// Package mail implements the outbound mail gateway over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"identity/config"
	"identity/internal/domain/entity"
	"identity/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

type mailContent struct {
	subject string
	path    string // Link path under the configured host URL.
}

var contentByType = map[entity.TokenType]mailContent{
	entity.TokenTypeEmailVerification: {
		subject: "Verify your email address",
		path:    "/verify",
	},
	entity.TokenTypeEmailRegistration: {
		subject: "Confirm your registration",
		path:    "/register/confirm",
	},
	entity.TokenTypeLostPassword: {
		subject: "Reset your password",
		path:    "/password/reset",
	},
}

var bodyTemplate = template.Must(template.New("verification").Parse(`<html>
<body>
<p>Hello {{.Name}},</p>
<p>Click <a href="{{.Link}}">here</a> to continue, or copy this link into your browser:</p>
<p>{{.Link}}</p>
<p>This link expires at {{.Expires}}.</p>
<p>If you did not request this email, you can safely ignore it.</p>
</body>
</html>`))

// gomailGateway implements service.MailGateway over SMTP. Delivery happens
// synchronously in the caller's request so issue/resend operations can
// report an unsent token.
type gomailGateway struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// GatewayParams holds dependencies for the mail gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGomailGateway is the constructor for gomailGateway.
func NewGomailGateway(params GatewayParams) (service.MailGateway, error) {
	mailCfg := params.Config.Mail
	if mailCfg == nil {
		return nil, errors.New("mail configuration is required")
	}

	return &gomailGateway{
		dialer: gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password),
		from:   mailCfg.From,
		logger: params.Logger,
	}, nil
}

// SendVerificationToken renders the token mail for its type and hands it to
// the SMTP dialer.
func (g *gomailGateway) SendVerificationToken(ctx context.Context, mail service.VerificationMail) error {
	content, ok := contentByType[mail.TokenType]
	if !ok {
		return errors.Errorf("no mail content for token type %q", mail.TokenType)
	}

	body, err := renderBody(mail, content)
	if err != nil {
		return errors.Wrap(err, "failed to render verification mail body")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", g.from)
	msg.SetHeader("To", mail.EmailAddress)
	msg.SetHeader("Subject", content.subject)
	msg.SetBody("text/html", body)

	if err := g.dialer.DialAndSend(msg); err != nil {
		g.logger.Error("Failed to send verification mail",
			slog.String("email", mail.EmailAddress), slog.Any("tokenType", mail.TokenType), slog.Any("error", err))

		return errors.Wrap(err, "failed to send verification mail")
	}
	g.logger.Debug("Verification mail sent",
		slog.String("email", mail.EmailAddress), slog.Any("tokenType", mail.TokenType))

	return nil
}

// VerificationLink builds the link embedded in the mail body.
func VerificationLink(mail service.VerificationMail, path string) string {
	return fmt.Sprintf("%s%s?token=%s", mail.HostURL, path, mail.EncodedToken)
}

func renderBody(mail service.VerificationMail, content mailContent) (string, error) {
	name := mail.FirstName
	if name == "" {
		name = mail.EmailAddress
	}

	var buf bytes.Buffer
	data := struct {
		Name    string
		Link    string
		Expires string
	}{
		Name:    name,
		Link:    VerificationLink(mail, content.path),
		Expires: mail.ExpiresAt.Format(time.RFC1123),
	}

	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
