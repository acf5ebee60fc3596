package enum

// Toggle returns the opposite theme (dark↔light). System defaults to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Scheme returns the concrete scheme for an explicit preference.
// ok is false for ThemeSystem, which has no scheme of its own.
func (t Theme) Scheme() (s Scheme, ok bool) {
	switch t {
	case ThemeLight:
		return SchemeLight, true
	case ThemeDark:
		return SchemeDark, true
	default:
		return SchemeLight, false
	}
}
