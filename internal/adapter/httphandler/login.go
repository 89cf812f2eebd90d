package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET /login form (200 OK)
// POST /login form-urlencoded (303 See Other to /, 200 OK with error,
// 422 Unprocessable entity with field errors)

type LoginHandler struct {
	auth      port.Authenticator
	templates Templates
}

func RegisterLogin(r chi.Router, auth port.Authenticator, t Templates) {
	h := LoginHandler{auth, t}
	r.Get("/login", h.GetLogin)
	r.With(AllowForm).Post("/login", h.PostLogin)
}

func (h LoginHandler) GetLogin(w http.ResponseWriter, r *http.Request) {
	h.templates.render(w, http.StatusOK, "login", newLoginView(""))
}

func (h LoginHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "LoginHandler.PostLogin"
	log := slog.With("op", op)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		log.Warn("failed to parse form", "err", err)
		return
	}

	creds := domain.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	err := h.auth.Login(r.Context(), creds)
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	view := newLoginView(creds.Email)
	status := http.StatusOK

	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		view.FieldErrors = verrs
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCredentials):
		view.Error = domain.MsgInvalidCredentials
	default:
		view.Error = domain.MsgLoginUnavailable
		status = http.StatusInternalServerError
		log.Error("login failed", "err", err)
	}

	h.templates.render(w, status, "login", view)
}
