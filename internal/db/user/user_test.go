package user

import (
	c "authwall/internal/core/domain/common"
	"authwall/internal/core/domain/user"
	"authwall/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
	SESSION_TOKEN = "test-session-token"
	RESET_TOKEN   = "test-reset-token"
)

var NOW time.Time = time.Date(2022, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateSuccess() {
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.NotZero(u.ID)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.False(u.SessionToken.IsPresent)
	assert.False(u.ResetToken.IsPresent)
	assert.True(NOW.Equal(u.CreatedAt))
}

func (s *testSuite) TestEmailAlreadyExistsError() {
	input := user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	}
	_, err := s.repo.Create(context.Background(), input)

	assert := s.Require()
	assert.Nil(err)

	_, err = s.repo.Create(context.Background(), input)
	assert.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestFindByEmail() {
	created := s.createUser(EMAIL)

	u, err := s.repo.FindBy(
		context.Background(),
		user.SearchBy{Email: c.NewOptional(c.NewEmail(EMAIL), true)},
	)
	s.Nil(err)
	s.Equal(created.ID, u.ID)
}

func (s *testSuite) TestFindByID() {
	created := s.createUser(EMAIL)

	u, err := s.repo.FindBy(
		context.Background(),
		user.SearchBy{ID: c.NewOptional(created.ID, true)},
	)
	s.Nil(err)
	s.Equal(created.Email, u.Email)
}

func (s *testSuite) TestFindBySessionToken() {
	created := s.createUser(EMAIL)
	s.setSessionToken(created.ID, SESSION_TOKEN)

	u, err := s.repo.FindBy(
		context.Background(),
		user.SearchBy{SessionToken: c.NewOptional(user.SessionToken(SESSION_TOKEN), true)},
	)
	s.Nil(err)
	s.Equal(created.ID, u.ID)
	s.True(u.SessionToken.IsPresent)
	s.Equal(user.SessionToken(SESSION_TOKEN), u.SessionToken.Value)
}

func (s *testSuite) TestFindByResetToken() {
	created := s.createUser(EMAIL)
	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:                 created.ID,
		DoResetTokenUpdate: true,
		ResetToken:         c.NewOptional(user.PasswordResetToken(RESET_TOKEN), true),
	})
	s.Nil(err)

	u, err := s.repo.FindBy(
		context.Background(),
		user.SearchBy{ResetToken: c.NewOptional(user.PasswordResetToken(RESET_TOKEN), true)},
	)
	s.Nil(err)
	s.Equal(created.ID, u.ID)
}

func (s *testSuite) TestFindByCombinedCriteria() {
	created := s.createUser(EMAIL)
	s.setSessionToken(created.ID, SESSION_TOKEN)

	u, err := s.repo.FindBy(
		context.Background(),
		user.SearchBy{
			Email:        c.NewOptional(c.NewEmail(EMAIL), true),
			SessionToken: c.NewOptional(user.SessionToken(SESSION_TOKEN), true),
		},
	)
	s.Nil(err)
	s.Equal(created.ID, u.ID)

	_, err = s.repo.FindBy(
		context.Background(),
		user.SearchBy{
			Email:        c.NewOptional(c.NewEmail("other@test.test"), true),
			SessionToken: c.NewOptional(user.SessionToken(SESSION_TOKEN), true),
		},
	)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestFindByNoMatch() {
	s.createUser(EMAIL)

	_, err := s.repo.FindBy(
		context.Background(),
		user.SearchBy{Email: c.NewOptional(c.NewEmail("unknown@test.test"), true)},
	)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestFindByEmptyCriteria() {
	s.createUser(EMAIL)

	_, err := s.repo.FindBy(context.Background(), user.SearchBy{})
	s.ErrorIs(err, user.ErrEmptySearchCriteria)
}

func (s *testSuite) TestUpdatePasswordHashAndClearResetToken() {
	created := s.createUser(EMAIL)
	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:                 created.ID,
		DoResetTokenUpdate: true,
		ResetToken:         c.NewOptional(user.PasswordResetToken(RESET_TOKEN), true),
	})
	s.Nil(err)

	u, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:                   created.ID,
		DoPasswordHashUpdate: true,
		PasswordHash:         user.PasswordHash("new-password-hash"),
		DoResetTokenUpdate:   true,
		ResetToken:           c.NewOptional(user.PasswordResetToken(""), false),
	})
	s.Nil(err)
	s.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
	s.False(u.ResetToken.IsPresent)
}

func (s *testSuite) TestUpdateClearSessionToken() {
	created := s.createUser(EMAIL)
	s.setSessionToken(created.ID, SESSION_TOKEN)

	u, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:                   created.ID,
		DoSessionTokenUpdate: true,
		SessionToken:         c.NewOptional(user.SessionToken(""), false),
	})
	s.Nil(err)
	s.False(u.SessionToken.IsPresent)
}

func (s *testSuite) TestUpdateUnknownUser() {
	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:                   user.ID(12345),
		DoSessionTokenUpdate: true,
		SessionToken:         c.NewOptional(user.SessionToken(SESSION_TOKEN), true),
	})
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestUpdateNoFields() {
	created := s.createUser(EMAIL)

	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{ID: created.ID})
	s.ErrorIs(err, user.ErrNoUpdateFields)
}

func (s *testSuite) createUser(email string) user.User {
	s.T().Helper()
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(email),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}

func (s *testSuite) setSessionToken(id user.ID, token string) {
	s.T().Helper()
	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:                   id,
		DoSessionTokenUpdate: true,
		SessionToken:         c.NewOptional(user.SessionToken(token), true),
	})
	if err != nil {
		s.FailNow(err.Error())
	}
}
