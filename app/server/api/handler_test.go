package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/dusk/app/enum"
	"github.com/umputun/dusk/app/server/api/mocks"
	"github.com/umputun/dusk/app/server/internal"
	"github.com/umputun/dusk/app/store"
	"github.com/umputun/dusk/app/system"
)

func TestHandler_Get(t *testing.T) {
	kv := newTestStore(t)
	require.NoError(t, kv.Set(context.Background(), "clients/cli1/theme", "dark"))
	h := New(newTestResolver(kv), nil)

	tests := []struct {
		name   string
		client string
		hint   string
		want   internal.StateResponse
	}{
		{name: "stored dark", client: "cli1", want: internal.StateResponse{Theme: "dark", Preference: "dark", Source: "persisted"}},
		{name: "no preference light system", client: "cli2", want: internal.StateResponse{Theme: "light", Preference: "system", Source: "system"}},
		{name: "no preference dark hint", client: "cli2", hint: "dark",
			want: internal.StateResponse{Theme: "dark", Preference: "system", Source: "system"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/theme", http.NoBody)
			req.Header.Set(internal.ClientHeader, tc.client)
			if tc.hint != "" {
				req.Header.Set(system.HintHeader, tc.hint)
			}
			rec := httptest.NewRecorder()
			h.handleGet(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, decodeState(t, rec))
		})
	}
}

func TestHandler_Set(t *testing.T) {
	kv := newTestStore(t)
	h := New(newTestResolver(kv), nil)
	ctx := context.Background()

	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/theme", strings.NewReader(body))
		req.Header.Set(internal.ClientHeader, "cli1")
		rec := httptest.NewRecorder()
		h.handleSet(rec, req)
		return rec
	}

	t.Run("set dark persists", func(t *testing.T) {
		rec := put(`{"theme":"dark"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, internal.StateResponse{Theme: "dark", Preference: "dark", Source: "explicit"}, decodeState(t, rec))
		v, err := kv.Get(ctx, "clients/cli1/theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", v)
	})

	t.Run("invalid theme leaves store alone", func(t *testing.T) {
		rec := put(`{"theme":"purple"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `valid themes are: system, light, dark`)
		v, err := kv.Get(ctx, "clients/cli1/theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", v)
	})

	t.Run("empty theme rejected", func(t *testing.T) {
		rec := put(`{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		rec := put(`{"theme":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("system clears preference", func(t *testing.T) {
		rec := put(`{"theme":"system"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, internal.StateResponse{Theme: "light", Preference: "system", Source: "system"}, decodeState(t, rec))
		_, err := kv.Get(ctx, "clients/cli1/theme")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestHandler_Toggle(t *testing.T) {
	kv := newTestStore(t)
	h := New(newTestResolver(kv), nil)
	router := routegroup.New(http.NewServeMux())
	h.Register(router)

	toggle := func() internal.StateResponse {
		req := httptest.NewRequest(http.MethodPost, "/theme/toggle", http.NoBody)
		req.Header.Set(internal.ClientHeader, "cli1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeState(t, rec)
	}

	assert.Equal(t, "dark", toggle().Theme)
	assert.Equal(t, "light", toggle().Theme)
	resp := toggle()
	assert.Equal(t, internal.StateResponse{Theme: "dark", Preference: "dark", Source: "explicit"}, resp)
}

func TestHandler_SessionError(t *testing.T) {
	sessions := &mocks.SessionsMock{OpenFunc: func(http.ResponseWriter, *http.Request) (*internal.Session, error) {
		return nil, errors.New("db down")
	}}
	h := New(sessions, nil)

	for _, fn := range []http.HandlerFunc{h.handleGet, h.handleToggle} {
		rec := httptest.NewRecorder()
		fn(rec, httptest.NewRequest(http.MethodPost, "/", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	}
	rec := httptest.NewRecorder()
	h.handleSet(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"theme":"dark"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, sessions.OpenCalls(), 3)
}

func TestHandler_Clients(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("lists theme entries", func(t *testing.T) {
		lister := &mocks.ListerMock{ListFunc: func(_ context.Context, prefix string) ([]store.Entry, error) {
			assert.Equal(t, "clients/", prefix)
			return []store.Entry{
				{Key: "clients/a/theme", Value: "dark", UpdatedAt: ts},
				{Key: "clients/b/other", Value: "x", UpdatedAt: ts},
				{Key: "clients/c/theme", Value: "light", UpdatedAt: ts},
			}, nil
		}}
		h := New(&mocks.SessionsMock{}, lister)

		rec := httptest.NewRecorder()
		h.handleClients(rec, httptest.NewRequest(http.MethodGet, "/clients", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)

		var res []ClientPreference
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, []ClientPreference{
			{Client: "a", Theme: "dark", UpdatedAt: ts},
			{Client: "c", Theme: "light", UpdatedAt: ts},
		}, res)
	})

	t.Run("store error", func(t *testing.T) {
		lister := &mocks.ListerMock{ListFunc: func(context.Context, string) ([]store.Entry, error) {
			return nil, errors.New("db error")
		}}
		h := New(&mocks.SessionsMock{}, lister)
		rec := httptest.NewRecorder()
		h.handleClients(rec, httptest.NewRequest(http.MethodGet, "/clients", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("not registered without lister", func(t *testing.T) {
		h := New(&mocks.SessionsMock{}, nil)
		router := routegroup.New(http.NewServeMux())
		h.Register(router)
		h.RegisterAdmin(router)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients", http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	kv, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

// newTestResolver makes a db mode resolver that honors the client header on every request
func newTestResolver(kv *store.Store) *internal.Resolver {
	return &internal.Resolver{KV: kv, Persist: enum.PersistDB, TrustHeader: func(*http.Request) bool { return true }}
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) internal.StateResponse {
	t.Helper()
	var resp internal.StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
