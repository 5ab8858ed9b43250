package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	log "github.com/go-pkgz/lgr"
)

// EnvOverride names the environment variable forcing the color scheme ("dark" or "light").
const EnvOverride = "DUSK_COLOR_SCHEME"

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Detector finds out whether the OS prefers a dark color scheme.
type Detector struct {
	GOOS   string
	Run    Runner
	Getenv func(string) string
	// Background is the last resort, terminal background detection by default
	Background func() bool
}

// NewDetector makes a detector for the running OS.
func NewDetector() *Detector {
	return &Detector{
		GOOS:       runtime.GOOS,
		Run:        execRunner,
		Getenv:     os.Getenv,
		Background: lipgloss.HasDarkBackground,
	}
}

// PrefersDark checks the env override, then the OS setting, then the terminal background.
func (d *Detector) PrefersDark(ctx context.Context) bool {
	if v := strings.ToLower(strings.TrimSpace(d.Getenv(EnvOverride))); v != "" {
		switch v {
		case "dark":
			return true
		case "light":
			return false
		default:
			log.Printf("[WARN] ignoring %s=%q, expected dark or light", EnvOverride, v)
		}
	}

	if dark, ok := d.osPreference(ctx); ok {
		return dark
	}
	return d.Background()
}

// osPreference returns ok=false if the OS setting can't be read.
func (d *Detector) osPreference(ctx context.Context) (dark, ok bool) {
	switch d.GOOS {
	case "darwin":
		out, err := d.Run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			// the key doesn't exist in light mode
			return false, true
		}
		return strings.TrimSpace(string(out)) == "Dark", true
	case "linux":
		out, err := d.Run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err == nil {
			lower := strings.ToLower(string(out))
			if strings.Contains(lower, "dark") {
				return true, true
			}
			if strings.Contains(lower, "light") {
				return false, true
			}
		}
		// older GNOME, look at the gtk theme name
		out, err = d.Run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
		if err == nil && strings.Contains(strings.ToLower(string(out)), "dark") {
			return true, true
		}
		return false, false
	default:
		return false, false
	}
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return out, nil
}
