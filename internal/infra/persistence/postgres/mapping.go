package postgres

import (
	"identity/internal/domain/entity"
	"identity/internal/infra/persistence/model"
)

func toUserModel(user *entity.User) *model.UserModel {
	tokens := make([]model.VerificationTokenModel, 0, len(user.Tokens))
	for _, token := range user.Tokens {
		tokens = append(tokens, *toTokenModel(token))
	}

	return &model.UserModel{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		SessionToken:   user.SessionToken,
		Role:           user.Role.String(),
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
		Tokens:         tokens,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	tokens := make([]*entity.VerificationToken, 0, len(m.Tokens))
	for i := range m.Tokens {
		tokens = append(tokens, toTokenDomain(&m.Tokens[i]))
	}

	return &entity.User{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		SessionToken:   m.SessionToken,
		Role:           entity.Role(m.Role),
		IsVerified:     m.IsVerified,
		Tokens:         tokens,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toTokenModel(token *entity.VerificationToken) *model.VerificationTokenModel {
	return &model.VerificationTokenModel{
		ID:         token.ID,
		UserID:     token.UserID,
		Token:      token.Token,
		Type:       token.Type.String(),
		IsVerified: token.IsVerified,
		ExpiresAt:  token.ExpiresAt,
		CreatedAt:  token.CreatedAt,
	}
}

func toTokenDomain(m *model.VerificationTokenModel) *entity.VerificationToken {
	return &entity.VerificationToken{
		ID:         m.ID,
		UserID:     m.UserID,
		Token:      m.Token,
		Type:       entity.TokenType(m.Type),
		IsVerified: m.IsVerified,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}
