package profile

import (
	"authwall/internal/core/services"
	getuserbysessiontoken "authwall/internal/core/services/get_user_by_session_token"
	"authwall/internal/http/handlers/auth"
	"authwall/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
}

func New(
	service services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Email string `json:"email"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseSessionToken(r)
	if !ok {
		response.RenderForbidden(rw)
		return
	}

	result, err := h.service.Run(r.Context(), getuserbysessiontoken.Input{Token: token})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	if !result.User.IsPresent {
		response.RenderForbidden(rw)
		return
	}

	response.Render(rw, Result{Email: string(result.User.Value.Email)}, http.StatusOK)
}
