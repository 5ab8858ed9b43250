package enum

// Explicit reports whether the preference pins a theme, i.e. it is not "follow system".
func (p Preference) Explicit() bool {
	return p == PreferenceLight || p == PreferenceDark
}

// Theme returns the pinned theme for an explicit preference.
// ok is false for PreferenceSystem.
func (p Preference) Theme() (t Theme, ok bool) {
	switch p {
	case PreferenceDark:
		return ThemeDark, true
	case PreferenceLight:
		return ThemeLight, true
	default:
		return ThemeLight, false
	}
}
