package user

import (
	c "authwall/internal/core/domain/common"
	e "authwall/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type PasswordResetToken string

type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	SessionToken c.Optional[SessionToken]
	ResetToken   c.Optional[PasswordResetToken]
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

func (u *User) HasActiveSession() bool {
	return u.SessionToken.IsPresent
}

func (u *User) HasPendingPasswordReset() bool {
	return u.ResetToken.IsPresent
}
