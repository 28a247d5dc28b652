package token

import (
	"authwall/internal/core/domain/user"

	"github.com/google/uuid"
)

// UUID issues v4 identifiers for both session and password reset tokens.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateSessionToken() user.SessionToken {
	return user.SessionToken(uuid.New().String())
}

func (g *UUID) GeneratePasswordResetToken() user.PasswordResetToken {
	return user.PasswordResetToken(uuid.New().String())
}
