package user

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}

type PasswordResetTokenGenerator interface {
	GeneratePasswordResetToken() PasswordResetToken
}
