package token

import (
	"authwall/internal/core/domain/user"
	"testing"
)

func TestSessionTokenGenerator(t *testing.T) {
	generator := NewUUID()
	sessionTokens := make(map[user.SessionToken]struct{})
	for i := 0; i < 100; i++ {
		sessionToken := generator.GenerateSessionToken()
		if string(sessionToken) == "" {
			t.Fatal("sessionToken must not be empty")
		}
		if _, ok := sessionTokens[sessionToken]; ok {
			t.Fatalf("sessionToken %v already exists", sessionToken)
		}
		sessionTokens[sessionToken] = struct{}{}
	}
}

func TestPasswordResetTokenGenerator(t *testing.T) {
	generator := NewUUID()
	resetTokens := make(map[user.PasswordResetToken]struct{})
	for i := 0; i < 100; i++ {
		resetToken := generator.GeneratePasswordResetToken()
		if string(resetToken) == "" {
			t.Fatal("resetToken must not be empty")
		}
		if _, ok := resetTokens[resetToken]; ok {
			t.Fatalf("resetToken %v already exists", resetToken)
		}
		resetTokens[resetToken] = struct{}{}
	}
}
