package getuserbysessiontoken

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
	Token user.SessionToken
}

type Result struct {
	User c.Optional[user.User]
}

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
	if input.Token == "" {
		return result, nil
	}

	u, err := s.userRepository.FindBy(
		ctx,
		user.SearchBy{SessionToken: c.NewOptional(input.Token, true)},
	)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by session token.",
			logging.Entry("err", err),
		)
		return result, err
	}

	return Result{User: c.NewOptional(u, true)}, nil
}
