package register

import (
	c "authwall/internal/core/domain/common"
	"authwall/internal/core/domain/logging"
	uow "authwall/internal/core/domain/unit_of_work"
	"authwall/internal/core/domain/user"
	"authwall/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL    = "test@test.test"
	PASSWORD = "test-password"
)

var NOW time.Time = time.Date(2022, 6, 15, 12, 34, 55, 1, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestRegisterService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(c.Email(EMAIL), result.User.Email)
	assert.True(NOW.Equal(result.User.CreatedAt))
	assert.False(result.User.SessionToken.IsPresent)
	assert.False(result.User.ResetToken.IsPresent)
	assert.True(s.UnitOfWork.Context.WasCommitCalled)

	expectedHash, _ := s.PasswordHasher.HashPassword(user.RawPassword(PASSWORD))
	assert.Equal(expectedHash, result.User.PasswordHash)
}

func (s *testSuite) TestPasswordIsNotStoredInPlaintext() {
	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	s.Nil(err)
	s.NotEqual(user.PasswordHash(PASSWORD), result.User.PasswordHash)
	s.NotEmpty(result.User.PasswordHash)
}

func (s *testSuite) TestEmailAlreadyExists() {
	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)
	s.Nil(err)

	_, err = s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword("another-password")},
	)
	s.True(errors.Is(err, user.ErrEmailAlreadyExists))
	s.Equal(1, len(s.UnitOfWork.Context.UserRepository.Users))
}

func (s *testSuite) TestRepositoryError() {
	s.UnitOfWork.Context.UserRepository.ReturnError = true

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)
	s.NotNil(err)
	s.False(s.UnitOfWork.Context.WasCommitCalled)
}
