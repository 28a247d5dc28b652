package sendresettoken

import (
	c "authwall/internal/core/domain/common"
	"authwall/internal/core/domain/user"
	"authwall/internal/core/services"
	issueresettoken "authwall/internal/core/services/issue_reset_token"
	"authwall/internal/http/handlers/response"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[issueresettoken.Input, issueresettoken.Result]
}

func New(
	service services.Service[issueresettoken.Input, issueresettoken.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Email string
}

type Result struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	input := Input{Email: r.PostFormValue("email")}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	email := c.NewEmail(input.Email)
	result, err := h.service.Run(r.Context(), issueresettoken.Input{Email: email})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderForbidden(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Email: string(email), ResetToken: string(result.Token)},
		http.StatusOK,
	)
}
