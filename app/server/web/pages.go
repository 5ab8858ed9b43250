package web

import (
	"errors"
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/dusk/app/enum"
	"github.com/umputun/dusk/app/server/internal"
	"github.com/umputun/dusk/app/theme"
)

// handleIndex renders the main page with the resolved theme baked in.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	setHintHeaders(w)
	sess, err := h.sessions.Open(w, r)
	if err != nil {
		log.Printf("[ERROR] failed to open theme session: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer sess.Close()

	resp, err := sess.Response(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to read theme state: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := templateData{
		RootClass:   sess.Document.RootClass(),
		SunClass:    sess.Document.SunClass(),
		MoonClass:   sess.Document.MoonClass(),
		Theme:       resp.Theme,
		Preference:  resp.Preference,
		Source:      resp.Source,
		Preferences: enum.PreferenceNames,
		BaseURL:     h.baseURL,
	}
	if err := h.tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle flips the theme and persists it.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Open(w, r)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err, "failed to open theme session")
		return
	}
	defer sess.Close()

	if _, err := sess.Controller.Toggle(r.Context()); err != nil {
		h.fail(w, r, http.StatusInternalServerError, err, "failed to toggle theme")
		return
	}
	h.respond(w, r, sess)
}

// handleThemeSet applies light, dark or system from the path.
func (h *Handler) handleThemeSet(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Open(w, r)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err, "failed to open theme session")
		return
	}
	defer sess.Close()

	if err := sess.Controller.Set(r.Context(), r.PathValue("theme")); err != nil {
		if errors.Is(err, theme.ErrInvalidTheme) {
			h.fail(w, r, http.StatusBadRequest, err, err.Error())
			return
		}
		h.fail(w, r, http.StatusInternalServerError, err, "failed to set theme")
		return
	}
	h.respond(w, r, sess)
}

// handleSystemChange takes a prefers-color-scheme change reported by the page script.
// The reported value is pushed through the session's system signal, so an explicit
// preference still wins.
func (h *Handler) handleSystemChange(w http.ResponseWriter, r *http.Request) {
	dark, err := strconv.ParseBool(r.FormValue("dark"))
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err, "dark must be true or false")
		return
	}

	sess, err := h.sessions.Open(w, r)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err, "failed to open theme session")
		return
	}
	defer sess.Close()

	sess.Signal.Update(dark)
	h.respond(w, r, sess)
}

// respond replies with the session state as JSON for scripts, HX-Refresh for htmx
// and a redirect to the page for plain form posts.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, sess *internal.Session) {
	switch {
	case wantsJSON(r):
		resp, err := sess.Response(r.Context())
		if err != nil {
			h.fail(w, r, http.StatusInternalServerError, err, "failed to read theme state")
			return
		}
		rest.RenderJSON(w, resp)
	case r.Header.Get("HX-Request") == "true":
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
	default:
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
	}
}

// fail reports an error as JSON for scripts and as plain text otherwise.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, code int, err error, msg string) {
	if wantsJSON(r) {
		rest.SendErrorJSON(w, r, log.Default(), code, err, msg)
		return
	}
	if code >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s: %v", msg, err)
	}
	http.Error(w, msg, code)
}
