package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakePasswordResetTokenGenerator struct {
	Token string
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: token}
}

func (g *FakePasswordResetTokenGenerator) GeneratePasswordResetToken() PasswordResetToken {
	return PasswordResetToken(g.Token)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) FindBy(ctx context.Context, search SearchBy) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not find user by %v", search)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.findByLocked(search)
}

func (r *FakeUserRepository) FindByForUpdate(ctx context.Context, search SearchBy) (u User, err error) {
	return r.FindBy(ctx, search)
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %v", input.ID)
	}
	if input.IsEmpty() {
		return u, ErrNoUpdateFields
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.DoPasswordHashUpdate {
				r.Users[ix].PasswordHash = input.PasswordHash
			}
			if input.DoSessionTokenUpdate {
				r.Users[ix].SessionToken = input.SessionToken
			}
			if input.DoResetTokenUpdate {
				r.Users[ix].ResetToken = input.ResetToken
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) findByLocked(search SearchBy) (u User, err error) {
	if search.IsEmpty() {
		return u, ErrEmptySearchCriteria
	}
	for _, u := range r.Users {
		if search.ID.IsPresent && u.ID != search.ID.Value {
			continue
		}
		if search.Email.IsPresent && u.Email != search.Email.Value {
			continue
		}
		if search.SessionToken.IsPresent &&
			!(u.SessionToken.IsPresent && u.SessionToken.Value == search.SessionToken.Value) {
			continue
		}
		if search.ResetToken.IsPresent &&
			!(u.ResetToken.IsPresent && u.ResetToken.Value == search.ResetToken.Value) {
			continue
		}
		return u, nil
	}
	return u, ErrUserDoesNotExist
}

var _ UserRepository = (*FakeUserRepository)(nil)
