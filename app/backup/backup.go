// Package backup exports and imports stored client theme preferences.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/dusk/app/enum"
	"github.com/umputun/dusk/app/store"
	"github.com/umputun/dusk/app/theme"
)

// supportedFormats lists all supported document formats.
var supportedFormats = []string{"json", "yaml"}

// Store defines the storage operations used by export and import.
type Store interface {
	List(ctx context.Context, prefix string) ([]store.Entry, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Document is the exported form, client id to preference.
type Document struct {
	Clients map[string]string `json:"clients" yaml:"clients"`
}

// SupportedFormats returns the list of supported formats.
func SupportedFormats() []string {
	return supportedFormats
}

// FormatOf picks the format from a file extension, json if unknown.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// Export writes all stored client preferences to w and returns the number written.
func Export(ctx context.Context, st Store, w io.Writer, format string) (int, error) {
	if !slices.Contains(supportedFormats, format) {
		return 0, fmt.Errorf("unsupported format %q", format)
	}
	entries, err := st.List(ctx, store.ClientsPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to list preferences: %w", err)
	}

	doc := Document{Clients: map[string]string{}}
	for _, e := range entries {
		if client, ok := store.ClientOf(e.Key, theme.PrefKey); ok {
			doc.Clients[client] = e.Value
		}
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return 0, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return 0, fmt.Errorf("failed to flush yaml: %w", err)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return 0, fmt.Errorf("failed to encode json: %w", err)
		}
	}
	return len(doc.Clients), nil
}

// Import reads a document and stores its preferences. Every value is validated before anything
// is written. "system" removes the client's stored preference.
func Import(ctx context.Context, st Store, r io.Reader, format string) (int, error) {
	doc, err := decode(r, format)
	if err != nil {
		return 0, err
	}

	prefs := make(map[string]enum.Preference, len(doc.Clients))
	for client, value := range doc.Clients {
		if store.NormalizeKey(client) == "" {
			return 0, fmt.Errorf("empty client id for %q", value)
		}
		pref, err := enum.ParsePreference(value)
		if err != nil || value == "" {
			return 0, fmt.Errorf("client %q: %w %q, valid themes are: %s", client, theme.ErrInvalidTheme, value,
				strings.Join(theme.ValidThemes, ", "))
		}
		prefs[client] = pref
	}

	for client, pref := range prefs {
		key := store.ClientPrefix(client) + theme.PrefKey
		if !pref.Explicit() {
			if err := st.Delete(ctx, key); err != nil && !errors.Is(err, store.ErrNotFound) {
				return 0, fmt.Errorf("failed to clear preference of %q: %w", client, err)
			}
			continue
		}
		if err := st.Set(ctx, key, pref.String()); err != nil {
			return 0, fmt.Errorf("failed to store preference of %q: %w", client, err)
		}
	}
	log.Printf("[DEBUG] imported %d preferences", len(prefs))
	return len(prefs), nil
}

func decode(r io.Reader, format string) (Document, error) {
	var doc Document
	switch format {
	case "json":
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("invalid json: %w", err)
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported format %q", format)
	}
	return doc, nil
}
