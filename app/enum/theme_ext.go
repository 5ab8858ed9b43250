package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeOf maps a "prefers dark" flag to a theme.
func ThemeOf(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
