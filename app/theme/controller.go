// Package theme owns the effective light/dark theme of a single surface.
//
// The Controller resolves the theme from three inputs: the persisted preference, the system
// color-scheme preference and explicit user actions (toggle, set). It keeps the surface's root class
// and the sun/moon indicators consistent with the effective value at all times.
package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/dusk/app/enum"
	"github.com/umputun/dusk/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/surface.go -pkg mocks -skip-ensure -fmt goimports . Surface
//go:generate moq -out mocks/signal.go -pkg mocks -skip-ensure -fmt goimports . SystemSignal

// PrefKey is the store key holding the persisted preference.
const PrefKey = "theme"

// ErrInvalidTheme is returned by Set for values outside of ValidThemes.
var ErrInvalidTheme = errors.New("invalid theme")

// ValidThemes lists values accepted by Set.
var ValidThemes = enum.PreferenceNames

// Store persists the preference. Get returns store.ErrNotFound for an absent key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Surface is the visual root the theme is applied to.
type Surface interface {
	ApplyTheme(t enum.Theme)
	ShowDarkIcon()
	ShowLightIcon()
}

// SystemSignal reports the host's color-scheme preference and its changes.
type SystemSignal interface {
	PrefersDark() bool
	Subscribe(fn func(dark bool)) (unsubscribe func())
}

// State is a snapshot of the effective theme and where it came from.
type State struct {
	Source enum.Source `json:"source"`
	Value  enum.Theme  `json:"theme"`
}

// Controller keeps the surface in sync with the resolved theme.
// All methods are safe for concurrent use.
type Controller struct {
	store   Store
	surface Surface
	system  SystemSignal

	mu          sync.Mutex
	state       State
	initialized bool
	unsubscribe func()
}

// New makes a controller. Init must be called before the controller reflects any preference.
func New(st Store, surface Surface, system SystemSignal) *Controller {
	return &Controller{
		store:   st,
		surface: surface,
		system:  system,
		state:   State{Source: enum.SourcePersisted, Value: enum.ThemeLight},
	}
}

// Init resolves the initial theme and subscribes to system preference changes.
// Calling Init more than once is a no-op.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	pref, err := c.preference(ctx)
	if err != nil {
		return fmt.Errorf("failed to read theme preference: %w", err)
	}

	// absent preference resolves to light first, then the system preference takes over
	value, explicit := pref.Theme()
	c.apply(State{Source: enum.SourcePersisted, Value: value})
	if !explicit {
		c.apply(State{Source: enum.SourceSystem, Value: enum.ThemeOf(c.system.PrefersDark())})
	}

	c.unsubscribe = c.system.Subscribe(c.onSystemChange)
	c.initialized = true
	log.Printf("[DEBUG] theme initialized, preference=%s, theme=%s", pref, c.state.Value)
	return nil
}

// Toggle flips the effective theme and persists the new value as an explicit preference.
func (c *Controller) Toggle(ctx context.Context) (enum.Theme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Value.Toggle()
	if err := c.store.Set(ctx, PrefKey, next.String()); err != nil {
		return c.state.Value, fmt.Errorf("failed to persist theme %s: %w", next, err)
	}
	c.apply(State{Source: enum.SourceExplicit, Value: next})
	return next, nil
}

// Set applies "light", "dark" or "system". Any other value is rejected without changing anything.
// "system" clears the persisted preference and follows the system preference from then on.
func (c *Controller) Set(ctx context.Context, value string) error {
	pref, err := parsePreference(value)
	if err != nil {
		log.Printf("[WARN] %v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if th, explicit := pref.Theme(); explicit {
		if err := c.store.Set(ctx, PrefKey, pref.String()); err != nil {
			return fmt.Errorf("failed to persist theme %s: %w", pref, err)
		}
		c.apply(State{Source: enum.SourceExplicit, Value: th})
		return nil
	}

	if err := c.store.Delete(ctx, PrefKey); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to clear theme preference: %w", err)
	}
	c.apply(State{Source: enum.SourceSystem, Value: enum.ThemeOf(c.system.PrefersDark())})
	return nil
}

// Current returns the effective theme.
func (c *Controller) Current() enum.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Value
}

// State returns the effective theme with its source.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Preference returns the persisted preference, PreferenceSystem if the key is absent or "system".
// An unknown stored value reads as PreferenceLight.
func (c *Controller) Preference(ctx context.Context) (enum.Preference, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preference(ctx)
}

// Close stops following system preference changes.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// onSystemChange follows the system preference unless any preference other than "system" is persisted.
func (c *Controller) onSystemChange(dark bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pref, err := c.preference(context.Background())
	if err != nil {
		log.Printf("[WARN] failed to read theme preference on system change: %v", err)
		return
	}
	if pref.Explicit() {
		log.Printf("[DEBUG] system preference change ignored, explicit preference %s", pref)
		return
	}
	c.apply(State{Source: enum.SourceSystem, Value: enum.ThemeOf(dark)})
}

// preference reads the stored value. Only an absent key or "system" means "follow system",
// any other unknown value is still a stored preference and renders light.
// must be called with lock held.
func (c *Controller) preference(ctx context.Context) (enum.Preference, error) {
	raw, err := c.store.Get(ctx, PrefKey)
	if errors.Is(err, store.ErrNotFound) {
		return enum.PreferenceSystem, nil
	}
	if err != nil {
		return enum.PreferenceSystem, err
	}
	pref, err := enum.ParsePreference(raw)
	if err != nil {
		log.Printf("[WARN] unknown stored theme %q, using %s", raw, enum.PreferenceLight)
		return enum.PreferenceLight, nil
	}
	return pref, nil
}

// apply sets state, root class and icons in one step.
// must be called with lock held.
func (c *Controller) apply(st State) {
	c.state = st
	c.surface.ApplyTheme(st.Value)
	if st.Value == enum.ThemeDark {
		c.surface.ShowDarkIcon()
		return
	}
	c.surface.ShowLightIcon()
}

// parsePreference validates user input for Set. Empty string is rejected here even though
// the enum treats it as an alias of system.
func parsePreference(value string) (enum.Preference, error) {
	if value == "" {
		return enum.Preference{}, invalidThemeError(value)
	}
	pref, err := enum.ParsePreference(value)
	if err != nil {
		return enum.Preference{}, invalidThemeError(value)
	}
	return pref, nil
}

func invalidThemeError(value string) error {
	return fmt.Errorf("%w %q, valid themes are: %s", ErrInvalidTheme, value, strings.Join(ValidThemes, ", "))
}
