package register

import (
	c "authwall/internal/core/domain/common"
	"authwall/internal/core/domain/user"
	"authwall/internal/core/services"
	register "authwall/internal/core/services/register"
	"authwall/internal/http/handlers/response"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[register.Input, register.Result]
}

func New(
	service services.Service[register.Input, register.Result],
) *Handler {
	return &Handler{service: service}
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

	result, err := h.service.Run(
		r.Context(),
		register.Input{Email: c.NewEmail(input.Email), Password: user.RawPassword(input.Password)},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already registered", http.StatusConflict)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Email: string(result.User.Email), Message: "user created"},
		http.StatusOK,
	)
}
