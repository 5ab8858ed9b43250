package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/dusk/app/enum"
)

func TestElement_ToggleClass(t *testing.T) {
	e := NewElement("x", "a")
	e.ToggleClass("b", true)
	e.ToggleClass("b", true)
	assert.Equal(t, "a b", e.Class())

	e.ToggleClass("a", false)
	e.ToggleClass("missing", false)
	assert.Equal(t, "b", e.Class())
	assert.True(t, e.HasClass("b"))
	assert.False(t, e.HasClass("a"))
}

func TestDocument(t *testing.T) {
	doc := NewDocument()
	assert.True(t, doc.HasIcons())
	assert.Equal(t, "", doc.RootClass())
	assert.False(t, doc.SunHidden())
	assert.True(t, doc.MoonHidden())

	doc.ApplyTheme(enum.ThemeDark)
	doc.ShowDarkIcon()
	assert.True(t, doc.IsDark())
	assert.Equal(t, "dark", doc.RootClass())
	assert.Equal(t, "hidden", doc.SunClass())
	assert.Equal(t, "", doc.MoonClass())

	doc.ApplyTheme(enum.ThemeLight)
	doc.ShowLightIcon()
	assert.False(t, doc.IsDark())
	assert.Equal(t, "", doc.SunClass())
	assert.Equal(t, "hidden", doc.MoonClass())
}

func TestDocument_WithoutIcons(t *testing.T) {
	doc := NewBareDocument()
	assert.False(t, doc.HasIcons())

	doc.ShowDarkIcon()
	doc.ShowLightIcon()
	assert.Equal(t, "", doc.SunClass())
	assert.Equal(t, "", doc.MoonClass())
	assert.True(t, doc.SunHidden())
	assert.True(t, doc.MoonHidden())

	doc.ApplyTheme(enum.ThemeDark)
	assert.True(t, doc.IsDark())
}
