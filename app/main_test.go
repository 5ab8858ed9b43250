package main

import (
	"bytes"
	"context"
	"testing"

	log "github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogs(t *testing.T) {
	t.Run("default mode", func(t *testing.T) {
		var buf bytes.Buffer
		setupLogs(false, &buf)
		log.Printf("[INFO] hello")
		log.Printf("[DEBUG] hidden")
		assert.Contains(t, buf.String(), "hello")
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("debug mode", func(t *testing.T) {
		var buf bytes.Buffer
		setupLogs(true, &buf)
		log.Printf("[DEBUG] visible")
		assert.Contains(t, buf.String(), "visible")
	})
	setupLogs(false, &bytes.Buffer{})
}

func TestSignals(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// verify signals() doesn't panic
	require.NotPanics(t, func() {
		signals(cancel)
	})
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"valid", "/dusk", "/dusk", false},
		{"valid nested", "/app/dusk", "/app/dusk", false},
		{"strips trailing slash", "/dusk/", "/dusk", false},
		{"root only", "/", "", false},
		{"missing leading slash", "dusk", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
