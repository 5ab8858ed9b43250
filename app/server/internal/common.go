// Package internal provides shared utilities for server subpackages.
package internal

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/dusk/app/enum"
	"github.com/umputun/dusk/app/store"
	"github.com/umputun/dusk/app/system"
	"github.com/umputun/dusk/app/theme"
)

// cookie and header names
const (
	ThemeCookie  = "theme"
	ClientCookie = "dusk-client"
	ClientHeader = "X-Dusk-Client" // explicit client id for trusted callers, overrides the cookie
)

const cookieMaxAge = 365 * 24 * 60 * 60 // 1 year

// StateResponse is the JSON view of a controller.
type StateResponse struct {
	Theme      string `json:"theme"`
	Preference string `json:"preference"`
	Source     string `json:"source"`
}

// Session is a controller bound to one request, with the document it renders to
// and the system signal built from the request's color-scheme hint.
type Session struct {
	Controller *theme.Controller
	Document   *theme.Document
	Signal     *system.Signal
	ClientID   string // empty in cookie mode
}

// Close releases the controller's system subscription.
func (s *Session) Close() {
	s.Controller.Close()
}

// Response builds the JSON view of the session state.
func (s *Session) Response(ctx context.Context) (StateResponse, error) {
	pref, err := s.Controller.Preference(ctx)
	if err != nil {
		return StateResponse{}, fmt.Errorf("failed to read preference: %w", err)
	}
	st := s.Controller.State()
	return StateResponse{Theme: st.Value.String(), Preference: pref.String(), Source: st.Source.String()}, nil
}

// Resolver opens sessions for requests. The preference lives either in the theme cookie
// or in the kv store under a per-client namespace.
type Resolver struct {
	KV         store.KV
	Persist    enum.Persist
	CookiePath string
	Secure     bool

	// TrustHeader reports whether the request may pick its namespace with ClientHeader.
	// nil means the header is never honored.
	TrustHeader func(r *http.Request) bool
}

// Open creates and initializes a session for the request.
func (rs *Resolver) Open(w http.ResponseWriter, r *http.Request) (*Session, error) {
	var st theme.Store
	var clientID string
	switch rs.Persist {
	case enum.PersistDB:
		clientID = rs.clientID(w, r)
		st = store.NewScoped(rs.KV, clientID)
	default:
		st = NewCookieStore(w, r, rs.cookiePath(), rs.Secure)
	}

	doc := theme.NewDocument()
	sig := system.RequestSignal(r)
	ctrl := theme.New(st, doc, sig)
	if err := ctrl.Init(r.Context()); err != nil {
		return nil, fmt.Errorf("failed to init theme: %w", err)
	}
	return &Session{Controller: ctrl, Document: doc, Signal: sig, ClientID: clientID}, nil
}

// clientID returns the client id from the header of a trusted request or from the cookie,
// issuing a new cookie id if neither carries a usable one.
func (rs *Resolver) clientID(w http.ResponseWriter, r *http.Request) string {
	if id := store.NormalizeKey(r.Header.Get(ClientHeader)); id != "" {
		if rs.TrustHeader != nil && rs.TrustHeader(r) {
			return id
		}
		log.Printf("[WARN] ignoring %s from untrusted request %s %s", ClientHeader, r.Method, r.URL.Path)
	}
	if c, err := r.Cookie(ClientCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, rs.cookie(ClientCookie, id, cookieMaxAge))
	return id
}

func (rs *Resolver) cookiePath() string {
	if rs.CookiePath == "" {
		return "/"
	}
	return rs.CookiePath
}

func (rs *Resolver) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     rs.cookiePath(),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   rs.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
