package issueresettoken

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
	Token user.PasswordResetToken
}

type service struct {
	log                 logging.Logger
	unitOfWork          uow.UnitOfWork
	resetTokenGenerator user.PasswordResetTokenGenerator
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	resetTokenGenerator user.PasswordResetTokenGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if resetTokenGenerator == nil {
		panic(e.NewNilArgumentError("resetTokenGenerator"))
	}
	return &service{
		log:                 log,
		unitOfWork:          unitOfWork,
		resetTokenGenerator: resetTokenGenerator,
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
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset token issuance.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	// A pending token is returned as is, repeated requests before the
	// reset completes all observe the same token.
	if u.ResetToken.IsPresent {
		return Result{Token: u.ResetToken.Value}, nil
	}

	resetToken := s.resetTokenGenerator.GeneratePasswordResetToken()
	_, err = uow.Users().Update(ctx, user.UpdateUserInput{
		ID:                 u.ID,
		DoResetTokenUpdate: true,
		ResetToken:         c.NewOptional(resetToken, true),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not set password reset token for user.",
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
		"Password reset token issued for user.",
		logging.Entry("userID", u.ID),
	)
	return Result{Token: resetToken}, nil
}
