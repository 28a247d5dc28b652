package auth

import (
	"authwall/internal/core/domain/user"
	"net/http"
)

const (
	SESSION_COOKIE_NAME   = "session_id"
	SESSION_TOKEN_MAX_LEN = 1024
)

func ParseSessionToken(r *http.Request) (token user.SessionToken, ok bool) {
	cookie, err := r.Cookie(SESSION_COOKIE_NAME)
	if err != nil {
		return token, false
	}
	if cookie.Value == "" || len(cookie.Value) > SESSION_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(cookie.Value), true
}

func SetSessionCookie(rw http.ResponseWriter, token user.SessionToken) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    string(token),
		Path:     "/",
		HttpOnly: true,
	})
}

func ClearSessionCookie(rw http.ResponseWriter) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
