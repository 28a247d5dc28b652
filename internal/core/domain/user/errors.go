package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrInvalidPasswordResetToken = errors.New("invalid password reset token")
	ErrEmptySearchCriteria       = errors.New("search criteria must not be empty")
	ErrNoUpdateFields            = errors.New("update must contain at least one field")
)
