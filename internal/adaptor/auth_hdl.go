package adaptor

import (
	"io"
	"net/http"

	"movie-booking-client/internal/usecase"
	"movie-booking-client/internal/view"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// LoginForm handles GET /login (public only)
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Sign in to your account: login --email <email>\nDon't have an account? register")
}

// Login handles POST /login (public only)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	result := h.service.Login(r.Context(), r.FormValue("email"), r.FormValue("password"))
	h.respond(w, r, result)
}

// RegisterForm handles GET /register (public only)
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Create your account: register --name <name> --email <email>\nAlready have an account? login")
}

// Register handles POST /register (public only)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	result := h.service.Register(r.Context(), r.FormValue("name"), r.FormValue("email"), r.FormValue("password"))
	h.respond(w, r, result)
}

// success goes home, failure stays on the form
func (h *AuthHandler) respond(w http.ResponseWriter, r *http.Request, result usecase.AuthResult) {
	if !result.Success {
		view.Render(w, r, http.StatusBadRequest, result, nil)
		return
	}

	user := h.service.CurrentUser()
	w.Header().Set("Location", "/")
	view.Render(w, r, http.StatusSeeOther, user, func(out io.Writer) {
		view.WhoAmI(out, user)
	})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	utils.ResponseSeeOther(w, "", "/")
}

// WhoAmI handles GET /whoami
func (h *AuthHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	user := h.service.CurrentUser()
	view.Render(w, r, http.StatusOK, user, func(out io.Writer) {
		view.WhoAmI(out, user)
	})
}

// Nav handles GET /nav
func (h *AuthHandler) Nav(w http.ResponseWriter, r *http.Request) {
	nav := view.NewNav(h.service.CurrentUser())
	view.Render(w, r, http.StatusOK, nav, func(out io.Writer) {
		view.NavBar(out, nav)
	})
}
