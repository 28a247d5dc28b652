package services

import (
	"authwall/internal/app/deps"
	"authwall/internal/core/services"
	createsession "authwall/internal/core/services/create_session"
	destroysession "authwall/internal/core/services/destroy_session"
	getuserbysessiontoken "authwall/internal/core/services/get_user_by_session_token"
	issueresettoken "authwall/internal/core/services/issue_reset_token"
	"authwall/internal/core/services/register"
	updatepassword "authwall/internal/core/services/update_password"
	validlogin "authwall/internal/core/services/valid_login"
)

type Services struct {
	Register              services.Service[register.Input, register.Result]
	ValidLogin            services.Service[validlogin.Input, validlogin.Result]
	CreateSession         services.Service[createsession.Input, createsession.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	DestroySession        services.Service[destroysession.Input, destroysession.Result]
	IssueResetToken       services.Service[issueresettoken.Input, issueresettoken.Result]
	UpdatePassword        services.Service[updatepassword.Input, updatepassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Register = register.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.ValidLogin = validlogin.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
	)
	s.CreateSession = createsession.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.SessionTokenGenerator,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.DestroySession = destroysession.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.IssueResetToken = issueresettoken.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordResetTokenGenerator,
	)
	s.UpdatePassword = updatepassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
	)

	return s
}
