package login

import (
	c "authwall/internal/core/domain/common"
	"authwall/internal/core/domain/user"
	"authwall/internal/core/services"
	createsession "authwall/internal/core/services/create_session"
	validlogin "authwall/internal/core/services/valid_login"
	"authwall/internal/http/handlers/auth"
	"authwall/internal/http/handlers/response"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	validLogin    services.Service[validlogin.Input, validlogin.Result]
	createSession services.Service[createsession.Input, createsession.Result]
}

func New(
	validLogin services.Service[validlogin.Input, validlogin.Result],
	createSession services.Service[createsession.Input, createsession.Result],
) *Handler {
	return &Handler{validLogin: validLogin, createSession: createSession}
}

type Input struct {
	Email    string
	Password string
}

type Result struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	input := Input{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	email := c.NewEmail(input.Email)
	validationResult, err := h.validLogin.Run(
		r.Context(),
		validlogin.Input{Email: email, Password: user.RawPassword(input.Password)},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	if !validationResult.IsValid {
		response.RenderError(rw, "invalid credentials", http.StatusUnauthorized)
		return
	}

	sessionResult, err := h.createSession.Run(r.Context(), createsession.Input{Email: email})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	if !sessionResult.Token.IsPresent {
		// The account disappeared between validation and session
		// creation.
		response.RenderError(rw, "invalid credentials", http.StatusUnauthorized)
		return
	}

	auth.SetSessionCookie(rw, sessionResult.Token.Value)
	response.Render(rw, Result{Email: string(email), Message: "logged in"}, http.StatusOK)
}
