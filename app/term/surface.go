// Package term renders the theme state on a terminal.
package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/dusk/app/enum"
)

// palette holds terminal colors for one theme.
type palette struct {
	Foreground string
	Background string
	Accent     string
}

var palettes = map[enum.Theme]palette{
	enum.ThemeLight: {Foreground: "#1F2328", Background: "#F6F8FA", Accent: "#BF8700"},
	enum.ThemeDark:  {Foreground: "#E6EDF3", Background: "#161B22", Accent: "#8B949E"},
}

// icon glyphs
const (
	SunGlyph  = "☀"
	MoonGlyph = "☾"
)

// Surface prints the theme as a styled status line. With Icons off the glyph is omitted.
type Surface struct {
	out   io.Writer
	Icons bool

	mu    sync.Mutex
	theme enum.Theme
	glyph string
}

// NewSurface makes a terminal surface writing to out.
func NewSurface(out io.Writer, icons bool) *Surface {
	return &Surface{out: out, Icons: icons, theme: enum.ThemeLight}
}

// ApplyTheme switches the palette.
func (s *Surface) ApplyTheme(t enum.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}

// ShowDarkIcon selects the moon glyph.
func (s *Surface) ShowDarkIcon() {
	s.setGlyph(MoonGlyph)
}

// ShowLightIcon selects the sun glyph.
func (s *Surface) ShowLightIcon() {
	s.setGlyph(SunGlyph)
}

func (s *Surface) setGlyph(g string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Icons {
		return
	}
	s.glyph = g
}

// Line returns the status line for the current state.
func (s *Surface) Line(label string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := palettes[s.theme]
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Foreground)).
		Background(lipgloss.Color(p.Background)).
		Padding(0, 1)
	text := s.theme.String()
	if label != "" {
		text += " (" + label + ")"
	}
	if s.glyph != "" {
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Render(s.glyph)
		text = glyph + " " + text
	}
	return style.Render(text)
}

// Print writes the status line followed by a newline.
func (s *Surface) Print(label string) error {
	if _, err := fmt.Fprintln(s.out, s.Line(label)); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}

// Theme returns the applied theme.
func (s *Surface) Theme() enum.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Glyph returns the visible icon glyph, empty when icons are off.
func (s *Surface) Glyph() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.glyph
}
