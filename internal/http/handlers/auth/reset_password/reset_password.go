package resetpassword

import (
	"authwall/internal/core/domain/user"
	"authwall/internal/core/services"
	updatepassword "authwall/internal/core/services/update_password"
	"authwall/internal/http/handlers/response"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[updatepassword.Input, updatepassword.Result]
}

func New(
	service services.Service[updatepassword.Input, updatepassword.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Email       string
	ResetToken  string
	NewPassword string
}

type Result struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.ResetToken, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.NewPassword, validation.Required, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	input := Input{
		Email:       r.PostFormValue("email"),
		ResetToken:  r.PostFormValue("reset_token"),
		NewPassword: r.PostFormValue("new_password"),
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		updatepassword.Input{
			Token:       user.PasswordResetToken(input.ResetToken),
			NewPassword: user.RawPassword(input.NewPassword),
		},
	)
	if errors.Is(err, user.ErrInvalidPasswordResetToken) {
		response.RenderForbidden(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Email: input.Email, Message: "Password updated"},
		http.StatusOK,
	)
}
