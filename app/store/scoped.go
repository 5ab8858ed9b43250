package store

import (
	"context"
	"fmt"
	"strings"
)

// ClientsPrefix is the key prefix shared by all client namespaces.
const ClientsPrefix = "clients/"

// Scoped namespaces keys of an underlying KV under "clients/<id>/".
// Each browser or CLI client gets its own "theme" key this way.
type Scoped struct {
	kv     KV
	prefix string
}

// NewScoped returns a KV view for a single client id.
func NewScoped(kv KV, clientID string) *Scoped {
	return &Scoped{kv: kv, prefix: ClientPrefix(clientID)}
}

// ClientPrefix returns the key prefix used for a client id.
func ClientPrefix(clientID string) string {
	return ClientsPrefix + NormalizeKey(clientID) + "/"
}

// ClientOf splits a scoped key into the client id, ok is false if scopedKey is not key under a client prefix.
func ClientOf(scopedKey, key string) (string, bool) {
	client, ok := strings.CutSuffix(strings.TrimPrefix(scopedKey, ClientsPrefix), "/"+key)
	if !ok || client == "" || !strings.HasPrefix(scopedKey, ClientsPrefix) {
		return "", false
	}
	return client, true
}

// Get retrieves a client-scoped value.
func (s *Scoped) Get(ctx context.Context, key string) (string, error) {
	v, err := s.kv.Get(ctx, s.prefix+key)
	if err != nil {
		return "", fmt.Errorf("scoped get %s: %w", key, err)
	}
	return v, nil
}

// Set stores a client-scoped value.
func (s *Scoped) Set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, s.prefix+key, value); err != nil {
		return fmt.Errorf("scoped set %s: %w", key, err)
	}
	return nil
}

// Delete removes a client-scoped value.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	if err := s.kv.Delete(ctx, s.prefix+key); err != nil {
		return fmt.Errorf("scoped delete %s: %w", key, err)
	}
	return nil
}
