// Package api provides HTTP handlers for the theme JSON API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/dusk/app/server/internal"
	"github.com/umputun/dusk/app/store"
	"github.com/umputun/dusk/app/theme"
)

//go:generate moq -out mocks/sessions.go -pkg mocks -skip-ensure -fmt goimports . Sessions
//go:generate moq -out mocks/lister.go -pkg mocks -skip-ensure -fmt goimports . Lister

// Sessions opens a theme session for a request.
type Sessions interface {
	Open(w http.ResponseWriter, r *http.Request) (*internal.Session, error)
}

// Lister lists stored entries by key prefix.
type Lister interface {
	List(ctx context.Context, prefix string) ([]store.Entry, error)
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	sessions Sessions
	lister   Lister // nil when preferences are not kept server-side
}

// SetRequest is the body of PUT /api/v1/theme.
type SetRequest struct {
	Theme string `json:"theme"`
}

// ClientPreference is one stored client preference.
type ClientPreference struct {
	Client    string    `json:"client"`
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a new API handler. lister may be nil.
func New(sessions Sessions, lister Lister) *Handler {
	return &Handler{sessions: sessions, lister: lister}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("PUT /theme", h.handleSet)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
}

// RegisterAdmin registers admin routes. Nothing is registered without a lister.
func (h *Handler) RegisterAdmin(r *routegroup.Bundle) {
	if h.lister != nil {
		r.HandleFunc("GET /clients", h.handleClients)
	}
}

// handleGet returns the resolved theme.
// GET /api/v1/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Open(w, r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to open theme session")
		return
	}
	defer sess.Close()
	h.render(w, r, sess)
}

// handleSet applies light, dark or system.
// PUT /api/v1/theme with {"theme":"dark"}
func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	var req SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	sess, err := h.sessions.Open(w, r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to open theme session")
		return
	}
	defer sess.Close()

	if err := sess.Controller.Set(r.Context(), req.Theme); err != nil {
		if errors.Is(err, theme.ErrInvalidTheme) {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, err.Error())
			return
		}
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to set theme")
		return
	}
	log.Printf("[INFO] theme set to %s, client %q", req.Theme, sess.ClientID)
	h.render(w, r, sess)
}

// handleToggle flips the theme.
// POST /api/v1/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Open(w, r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to open theme session")
		return
	}
	defer sess.Close()

	next, err := sess.Controller.Toggle(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to toggle theme")
		return
	}
	log.Printf("[INFO] theme toggled to %s, client %q", next, sess.ClientID)
	h.render(w, r, sess)
}

// handleClients lists stored client preferences.
// GET /api/v1/clients
func (h *Handler) handleClients(w http.ResponseWriter, r *http.Request) {
	entries, err := h.lister.List(r.Context(), store.ClientsPrefix)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list clients")
		return
	}

	res := make([]ClientPreference, 0, len(entries))
	for _, e := range entries {
		client, ok := store.ClientOf(e.Key, theme.PrefKey)
		if !ok {
			continue
		}
		res = append(res, ClientPreference{Client: client, Theme: e.Value, UpdatedAt: e.UpdatedAt})
	}
	log.Printf("[DEBUG] list clients: %d entries, %d preferences", len(entries), len(res))
	rest.RenderJSON(w, res)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, sess *internal.Session) {
	resp, err := sess.Response(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme state")
		return
	}
	rest.RenderJSON(w, resp)
}
