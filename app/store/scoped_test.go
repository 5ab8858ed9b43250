package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoped(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := NewScoped(st, "alice")
	bob := NewScoped(st, "bob")

	require.NoError(t, alice.Set(ctx, "theme", "dark"))
	require.NoError(t, bob.Set(ctx, "theme", "light"))

	v, err := alice.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	raw, err := st.Get(ctx, "clients/bob/theme")
	require.NoError(t, err)
	assert.Equal(t, "light", raw)

	require.NoError(t, alice.Delete(ctx, "theme"))
	_, err = alice.Get(ctx, "theme")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, alice.Delete(ctx, "theme"), ErrNotFound)

	v, err = bob.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v, "other clients are not affected")
}

func TestClientPrefix(t *testing.T) {
	assert.Equal(t, "clients/abc/", ClientPrefix("abc"))
	assert.Equal(t, "clients/a_b/", ClientPrefix(" /a b/ "))
}

func TestClientOf(t *testing.T) {
	tests := []struct {
		key    string
		client string
		ok     bool
	}{
		{key: "clients/abc/theme", client: "abc", ok: true},
		{key: "clients/a/b/theme", client: "a/b", ok: true},
		{key: "clients/abc/other", ok: false},
		{key: "clients//theme", ok: false},
		{key: "other/abc/theme", ok: false},
		{key: "theme", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			client, ok := ClientOf(tc.key, "theme")
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.client, client)
		})
	}
}
