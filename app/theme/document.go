package theme

import (
	"slices"
	"strings"
	"sync"

	"github.com/umputun/dusk/app/enum"
)

// element ids and class names shared with the page templates and script
const (
	DarkClass   = "dark"
	HiddenClass = "hidden"
	SunIconID   = "sun-icon"
	MoonIconID  = "moon-icon"
)

// Element is a node with a class list.
type Element struct {
	ID      string
	classes []string
}

// NewElement makes an element with the given id and initial classes.
func NewElement(id string, classes ...string) *Element {
	return &Element{ID: id, classes: slices.Clone(classes)}
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// ToggleClass adds the class when on is true and removes it otherwise.
func (e *Element) ToggleClass(name string, on bool) {
	has := e.HasClass(name)
	switch {
	case on && !has:
		e.classes = append(e.classes, name)
	case !on && has:
		e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
	}
}

// Class returns the class attribute value.
func (e *Element) Class() string {
	return strings.Join(e.classes, " ")
}

// Document is an in-memory page: a root element and optional sun/moon icons.
// It implements Surface and is what the web handler renders.
type Document struct {
	mu   sync.RWMutex
	root *Element
	sun  *Element
	moon *Element
}

// NewDocument makes a document with both icons present.
func NewDocument() *Document {
	return &Document{
		root: NewElement("root"),
		sun:  NewElement(SunIconID),
		moon: NewElement(MoonIconID, HiddenClass),
	}
}

// NewBareDocument makes a document without icon elements.
func NewBareDocument() *Document {
	return &Document{root: NewElement("root")}
}

// ApplyTheme sets or clears the dark class on the root element.
func (d *Document) ApplyTheme(t enum.Theme) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.root.ToggleClass(DarkClass, t == enum.ThemeDark)
}

// ShowDarkIcon hides the sun and shows the moon.
func (d *Document) ShowDarkIcon() {
	d.setIcons(true)
}

// ShowLightIcon shows the sun and hides the moon.
func (d *Document) ShowLightIcon() {
	d.setIcons(false)
}

func (d *Document) setIcons(dark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sun == nil || d.moon == nil {
		return
	}
	d.sun.ToggleClass(HiddenClass, dark)
	d.moon.ToggleClass(HiddenClass, !dark)
}

// IsDark reports whether the root carries the dark class.
func (d *Document) IsDark() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.root.HasClass(DarkClass)
}

// RootClass returns the class attribute of the root element.
func (d *Document) RootClass() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.root.Class()
}

// SunClass returns the sun icon class attribute, empty if the icon is absent.
func (d *Document) SunClass() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.sun == nil {
		return ""
	}
	return d.sun.Class()
}

// MoonClass returns the moon icon class attribute, empty if the icon is absent.
func (d *Document) MoonClass() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.moon == nil {
		return ""
	}
	return d.moon.Class()
}

// HasIcons reports whether both icon elements are present.
func (d *Document) HasIcons() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sun != nil && d.moon != nil
}

// SunHidden reports whether the sun icon is hidden. Absent icons count as hidden.
func (d *Document) SunHidden() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sun == nil || d.sun.HasClass(HiddenClass)
}

// MoonHidden reports whether the moon icon is hidden. Absent icons count as hidden.
func (d *Document) MoonHidden() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.moon == nil || d.moon.HasClass(HiddenClass)
}
