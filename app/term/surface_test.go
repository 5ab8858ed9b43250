package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/dusk/app/enum"
)

func TestSurface(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSurface(buf, true)
	assert.Equal(t, enum.ThemeLight, s.Theme())

	s.ApplyTheme(enum.ThemeDark)
	s.ShowDarkIcon()
	assert.Equal(t, enum.ThemeDark, s.Theme())
	assert.Equal(t, MoonGlyph, s.Glyph())

	require.NoError(t, s.Print("explicit"))
	assert.Contains(t, buf.String(), "dark (explicit)")
	assert.Contains(t, buf.String(), MoonGlyph)

	s.ApplyTheme(enum.ThemeLight)
	s.ShowLightIcon()
	assert.Equal(t, SunGlyph, s.Glyph())
	assert.Contains(t, s.Line(""), "light")
}

func TestSurface_NoIcons(t *testing.T) {
	s := NewSurface(&bytes.Buffer{}, false)
	s.ApplyTheme(enum.ThemeDark)
	s.ShowDarkIcon()
	assert.Empty(t, s.Glyph())
	line := s.Line("system")
	assert.Contains(t, line, "dark (system)")
	assert.NotContains(t, line, MoonGlyph)
	assert.NotContains(t, line, SunGlyph)
}
