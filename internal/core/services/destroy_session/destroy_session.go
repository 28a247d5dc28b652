package destroysession

import (
	c "authwall/internal/core/domain/common"
	e "authwall/internal/core/domain/errors"
	"authwall/internal/core/domain/logging"
	"authwall/internal/core/domain/user"
	"authwall/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	UserID user.ID
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:                   input.UserID,
		DoSessionTokenUpdate: true,
		SessionToken:         c.NewOptional(user.SessionToken(""), false),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	// Destroying a session for an unknown user is a no-op so a logout
	// racing with account state changes never fails.
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Session destroy requested for unknown user.",
			logging.Entry("userID", input.UserID),
		)
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not clear session token for user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Session destroyed for user.", logging.Entry("userID", input.UserID))
	return result, nil
}
