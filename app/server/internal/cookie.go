package internal

import (
	"context"
	"net/http"

	"github.com/umputun/dusk/app/store"
)

// CookieStore keeps the preference in a cookie, the server-side analogue of browser local storage.
// Writes go to the response and are visible to later reads within the same request.
type CookieStore struct {
	w       http.ResponseWriter
	values  map[string]string
	deleted map[string]bool
	path    string
	secure  bool
}

// NewCookieStore makes a store for a single request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request, path string, secure bool) *CookieStore {
	values := map[string]string{}
	for _, c := range r.Cookies() {
		if c.Value != "" {
			values[c.Name] = c.Value
		}
	}
	return &CookieStore{w: w, values: values, deleted: map[string]bool{}, path: path, secure: secure}
}

// Get returns the cookie value, store.ErrNotFound if absent.
func (s *CookieStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.values[key]
	if !ok || s.deleted[key] {
		return "", store.ErrNotFound
	}
	return v, nil
}

// Set writes a one-year cookie.
func (s *CookieStore) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	delete(s.deleted, key)
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     s.path,
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Delete expires the cookie.
func (s *CookieStore) Delete(_ context.Context, key string) error {
	if _, ok := s.values[key]; !ok || s.deleted[key] {
		return store.ErrNotFound
	}
	s.deleted[key] = true
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     s.path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
