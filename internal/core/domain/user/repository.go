package user

import (
	c "authwall/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

// SearchBy is a closed set of lookup criteria. Set fields are combined
// with AND; a search with no fields set fails with ErrEmptySearchCriteria.
type SearchBy struct {
	ID           c.Optional[ID]
	Email        c.Optional[c.Email]
	SessionToken c.Optional[SessionToken]
	ResetToken   c.Optional[PasswordResetToken]
}

func (s SearchBy) IsEmpty() bool {
	return !s.ID.IsPresent && !s.Email.IsPresent && !s.SessionToken.IsPresent && !s.ResetToken.IsPresent
}

// UpdateUserInput names the only fields that may change after creation.
// An update with no Do*Update flag set fails with ErrNoUpdateFields.
type UpdateUserInput struct {
	ID                   ID
	DoPasswordHashUpdate bool
	PasswordHash         PasswordHash
	DoSessionTokenUpdate bool
	SessionToken         c.Optional[SessionToken]
	DoResetTokenUpdate   bool
	ResetToken           c.Optional[PasswordResetToken]
}

func (u UpdateUserInput) IsEmpty() bool {
	return !u.DoPasswordHashUpdate && !u.DoSessionTokenUpdate && !u.DoResetTokenUpdate
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	FindBy(ctx context.Context, search SearchBy) (User, error)
	// FindByForUpdate locks the matched row until the enclosing unit of
	// work commits or rolls back.
	FindByForUpdate(ctx context.Context, search SearchBy) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
}
