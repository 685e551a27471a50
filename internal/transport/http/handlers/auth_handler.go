package handlers

import (
	"errors"
	"html"
	"log"
	"net/http"

	"github.com/peepapp/chitter/internal/service"
	"github.com/peepapp/chitter/internal/transport/http/middleware"
	"github.com/peepapp/chitter/pkg/validator"
)

type AuthHandler struct {
	users    UserDirectory
	sessions *middleware.SessionManager
}

func NewAuthHandler(users UserDirectory, sessions *middleware.SessionManager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Signup handles POST /signup. User-supplied text is HTML-escaped here, at
// the boundary; the core stores it as given and it is never escaped again.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	name := r.FormValue("name")
	username := r.FormValue("username")

	if errs := validator.ValidateSignup(email, password, name, username); errs.HasErrors() {
		http.Error(w, "fields must be completed", http.StatusBadRequest)
		return
	}

	input := service.RegisterInput{
		Email:    html.EscapeString(email),
		Password: html.EscapeString(password),
		Name:     html.EscapeString(name),
		Username: html.EscapeString(username),
	}

	if _, err := h.users.Register(r.Context(), input); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			render(w, http.StatusBadRequest, "signup_error.html", nil)
			return
		}
		log.Printf("ERROR signup: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "signup_success.html", nil)
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "login.html", nil)
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if errs := validator.ValidateLogin(email, password); errs.HasErrors() {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	user, err := h.users.Authenticate(r.Context(), email, password)
	if err != nil {
		log.Printf("ERROR login: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	if user == nil {
		render(w, http.StatusForbidden, "login_error.html", nil)
		return
	}

	if err := h.sessions.Create(w, r, user.ID); err != nil {
		log.Printf("ERROR creating session: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "login_success.html", nil)
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	http.Redirect(w, r, "/peeps", http.StatusSeeOther)
}
