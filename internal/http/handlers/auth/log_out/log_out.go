package logout

import (
	"authwall/internal/core/services"
	destroysession "authwall/internal/core/services/destroy_session"
	getuserbysessiontoken "authwall/internal/core/services/get_user_by_session_token"
	"authwall/internal/http/handlers/auth"
	"authwall/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	getUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	destroySession        services.Service[destroysession.Input, destroysession.Result]
}

func New(
	getUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result],
	destroySession services.Service[destroysession.Input, destroysession.Result],
) *Handler {
	return &Handler{getUserBySessionToken: getUserBySessionToken, destroySession: destroySession}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseSessionToken(r)
	if !ok {
		response.RenderForbidden(rw)
		return
	}

	result, err := h.getUserBySessionToken.Run(r.Context(), getuserbysessiontoken.Input{Token: token})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	if !result.User.IsPresent {
		response.RenderForbidden(rw)
		return
	}

	_, err = h.destroySession.Run(r.Context(), destroysession.Input{UserID: result.User.Value.ID})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	auth.ClearSessionCookie(rw)
	rw.WriteHeader(http.StatusNoContent)
}
