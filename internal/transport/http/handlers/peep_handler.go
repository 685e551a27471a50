package handlers

import (
	"errors"
	"fmt"
	"html"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/peepapp/chitter/internal/domain"
	"github.com/peepapp/chitter/internal/service"
	"github.com/peepapp/chitter/internal/transport/http/middleware"
)

type PeepHandler struct {
	peeps    PeepStore
	tags     TaggingService
	sessions *middleware.SessionManager
}

func NewPeepHandler(peeps PeepStore, tags TaggingService, sessions *middleware.SessionManager) *PeepHandler {
	return &PeepHandler{peeps: peeps, tags: tags, sessions: sessions}
}

// PeepView is a peep prepared for rendering. Message was escaped at the
// input boundary, so it is emitted as-is.
type PeepView struct {
	ID             int64
	Message        template.HTML
	AuthorName     string
	AuthorUsername string
	CreatedAt      time.Time
}

func toView(p domain.Peep) PeepView {
	return PeepView{
		ID:             p.ID,
		Message:        template.HTML(p.Message),
		AuthorName:     p.AuthorName,
		AuthorUsername: p.AuthorUsername,
		CreatedAt:      p.CreatedAt,
	}
}

func toViews(peeps []domain.Peep) []PeepView {
	views := make([]PeepView, 0, len(peeps))
	for _, p := range peeps {
		views = append(views, toView(p))
	}
	return views
}

// Home handles GET /. Logged-in users go straight to the feed.
func (h *PeepHandler) Home(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.CurrentUserID(r); ok {
		http.Redirect(w, r, "/peeps", http.StatusSeeOther)
		return
	}
	render(w, http.StatusOK, "index.html", nil)
}

// List handles GET /peeps. The feed is public.
func (h *PeepHandler) List(w http.ResponseWriter, r *http.Request) {
	peeps, err := h.peeps.ListWithAuthors(r.Context())
	if err != nil {
		log.Printf("ERROR listing peeps: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	_, loggedIn := h.sessions.CurrentUserID(r)
	render(w, http.StatusOK, "peeps.html", map[string]any{
		"Peeps":    toViews(peeps),
		"LoggedIn": loggedIn,
	})
}

// NewForm handles GET /peeps/new (gated).
func (h *PeepHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "create_peep.html", map[string]any{
		"ReplyTo": r.URL.Query().Get("peep_id"),
	})
}

// Create handles POST /peeps (gated). The peep is created first; tagging
// runs afterwards against the returned id, only when a tag list was given.
func (h *PeepHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	message := r.FormValue("message")
	if message == "" {
		http.Error(w, "peep should not be empty", http.StatusBadRequest)
		return
	}

	var parentID *int64
	if raw := r.FormValue("peep_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		parentID = &id
	}

	input := service.CreatePeepInput{
		Message:  html.EscapeString(message),
		AuthorID: middleware.GetUserID(r.Context()),
		ParentID: parentID,
	}

	peepID, err := h.peeps.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrParentNotFound) {
			http.Error(w, "reply target does not exist", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR creating peep: %v", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	if tags := r.FormValue("tags"); tags != "" {
		if err := h.tags.TagUsers(r.Context(), peepID, tags); err != nil {
			log.Printf("ERROR tagging peep %d: %v", peepID, err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}
	}

	if parentID != nil {
		http.Redirect(w, r, fmt.Sprintf("/peeps/%d", *parentID), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/peeps", http.StatusSeeOther)
}

// Show handles GET /peeps/{id} (gated): the peep, its direct replies and
// the users tagged in it.
func (h *PeepHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	peep, err := h.peeps.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ERROR finding peep %d: %v", id, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	if peep == nil {
		http.NotFound(w, r)
		return
	}

	replies, err := h.peeps.Replies(r.Context(), id)
	if err != nil {
		log.Printf("ERROR listing replies for peep %d: %v", id, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	tagged, err := h.tags.TaggedUsernames(r.Context(), id)
	if err != nil {
		log.Printf("ERROR listing tags for peep %d: %v", id, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "peep.html", map[string]any{
		"Peep":    toView(*peep),
		"Replies": toViews(replies),
		"Tagged":  tagged,
	})
}
