package system

import (
	"net/http"
	"strings"
)

// client hint headers carrying prefers-color-scheme
const (
	HintHeader     = "Sec-CH-Prefers-Color-Scheme"
	FallbackHeader = "X-Prefers-Color-Scheme"
)

// FromRequest reads the client's color-scheme hint. ok is false if the request carries none.
func FromRequest(r *http.Request) (dark, ok bool) {
	for _, h := range []string{HintHeader, FallbackHeader} {
		v := strings.ToLower(strings.Trim(strings.TrimSpace(r.Header.Get(h)), `"`))
		switch v {
		case "dark":
			return true, true
		case "light":
			return false, true
		}
	}
	return false, false
}

// RequestSignal makes a signal initialized from the request hint, light when there is none.
func RequestSignal(r *http.Request) *Signal {
	dark, _ := FromRequest(r)
	return NewSignal(dark)
}
