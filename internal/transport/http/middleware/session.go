package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/peepapp/chitter/internal/domain"
	"github.com/peepapp/chitter/internal/repository"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "chitter_session"

type contextKey string

const UserIDKey contextKey = "user_id"

// SessionManager owns the Anonymous/Authenticated state: it mints session
// tokens on login, destroys them on logout and resolves the current user id
// for a request. Session state lives in the sessions table, never in
// process-global memory.
type SessionManager struct {
	sessions repository.SessionRepository
}

func NewSessionManager(sessions repository.SessionRepository) *SessionManager {
	return &SessionManager{sessions: sessions}
}

func (m *SessionManager) Create(w http.ResponseWriter, r *http.Request, userID int64) error {
	session := &domain.Session{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	if err := m.sessions.Create(r.Context(), session); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		// A failed delete leaves a dangling row; unknown tokens are
		// treated as anonymous either way.
		_ = m.sessions.Delete(r.Context(), c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// CurrentUserID resolves the session cookie, if any, to a user id.
func (m *SessionManager) CurrentUserID(r *http.Request) (int64, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}

	userID, ok, err := m.sessions.GetUserID(r.Context(), c.Value)
	if err != nil || !ok {
		return 0, false
	}
	return userID, true
}

// RequireLogin gates a handler: anonymous requests are redirected to /login,
// authenticated ones proceed with the user id in the request context.
func (m *SessionManager) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.CurrentUserID(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user id a RequireLogin gate stored in the context.
func GetUserID(ctx context.Context) int64 {
	return ctx.Value(UserIDKey).(int64)
}
