package app

import (
	"authwall/internal/app/deps"
	"authwall/internal/app/services"
	login "authwall/internal/http/handlers/auth/log_in"
	logout "authwall/internal/http/handlers/auth/log_out"
	"authwall/internal/http/handlers/auth/profile"
	"authwall/internal/http/handlers/auth/register"
	resetpassword "authwall/internal/http/handlers/auth/reset_password"
	sendresettoken "authwall/internal/http/handlers/auth/send_reset_token"
	"authwall/internal/http/handlers/home"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Method(http.MethodGet, "/", home.New())
	router.Method(http.MethodPost, "/users", register.New(s.Register))
	router.Method(http.MethodPost, "/sessions", login.New(s.ValidLogin, s.CreateSession))
	router.Method(http.MethodDelete, "/sessions", logout.New(s.GetUserBySessionToken, s.DestroySession))
	router.Method(http.MethodGet, "/profile", profile.New(s.GetUserBySessionToken))
	router.Method(http.MethodPost, "/reset_password", sendresettoken.New(s.IssueResetToken))
	router.Method(http.MethodPut, "/reset_password", resetpassword.New(s.UpdatePassword))

	return &http.Server{
		Handler:           router,
		Addr:              deps.Config.HTTPAddress,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
	}
}
