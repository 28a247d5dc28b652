package createsession

import (
	c "authwall/internal/core/domain/common"
	e "authwall/internal/core/domain/errors"
	"authwall/internal/core/domain/logging"
	uow "authwall/internal/core/domain/unit_of_work"
	"authwall/internal/core/domain/user"
	"authwall/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email c.Email
}

type Result struct {
	Token c.Optional[user.SessionToken]
}

type service struct {
	log                   logging.Logger
	unitOfWork            uow.UnitOfWork
	sessionTokenGenerator user.SessionTokenGenerator
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	sessionTokenGenerator user.SessionTokenGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	return &service{
		log:                   log,
		unitOfWork:            unitOfWork,
		sessionTokenGenerator: sessionTokenGenerator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().FindByForUpdate(ctx, user.SearchBy{Email: c.NewOptional(input.Email, true)})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for session creation.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	// Overwriting invalidates any previous session, at most one live
	// session per user.
	sessionToken := s.sessionTokenGenerator.GenerateSessionToken()
	_, err = uow.Users().Update(ctx, user.UpdateUserInput{
		ID:                   u.ID,
		DoSessionTokenUpdate: true,
		SessionToken:         c.NewOptional(sessionToken, true),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not set session token for user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Session token created for user.",
		logging.Entry("userID", u.ID),
	)
	return Result{Token: c.NewOptional(sessionToken, true)}, nil
}
