package handler

import (
	"log/slog"
	"net/http"

	"identity/internal/delivery/http/response"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// emailRequest carries the address identifying the account to act on.
type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// resetPasswordRequest carries the replacement password for a reset.
type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=35"`
}

// VerificationHandler holds dependencies for the verification-token handlers.
type VerificationHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendLostPasswordToken mails the account's lost-password token, reusing the
// active one when it exists.
func (h *VerificationHandler) SendLostPasswordToken(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lost password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.SendLostPasswordToken(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenView(token), "Lost password email sent")
}

// ResendEmailVerificationToken re-mails the account's verification token.
func (h *VerificationHandler) ResendEmailVerificationToken(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.ResendEmailVerificationToken(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenView(token), "Verification email sent")
}

// VerifyToken consumes the token from the emailed link and marks the account
// verified.
func (h *VerificationHandler) VerifyToken(c echo.Context) error {
	encodedToken := c.Param("token")

	token, err := h.uc.VerifyToken(c.Request().Context(), encodedToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenView(token), "Account verified")
}

// ResetPassword consumes the token from the emailed link and replaces the
// account's password.
func (h *VerificationHandler) ResetPassword(c echo.Context) error {
	encodedToken := c.Param("token")

	var input resetPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.ResetPassword(c.Request().Context(), encodedToken, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenView(token), "Password reset")
}
