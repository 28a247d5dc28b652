package home

import (
	"authwall/internal/http/handlers/response"
	"net/http"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.RenderMessage(rw, "Bienvenue", http.StatusOK)
}
