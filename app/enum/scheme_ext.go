package enum

// IsDark reports whether the scheme is dark.
func (s Scheme) IsDark() bool { return s == SchemeDark }

// Toggle returns the opposite scheme.
func (s Scheme) Toggle() Scheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

// SchemeFromDark maps a "prefers dark" signal to a scheme.
func SchemeFromDark(dark bool) Scheme {
	if dark {
		return SchemeDark
	}
	return SchemeLight
}

// Theme returns the explicit preference pinning this scheme.
func (s Scheme) Theme() Theme {
	if s == SchemeDark {
		return ThemeDark
	}
	return ThemeLight
}
