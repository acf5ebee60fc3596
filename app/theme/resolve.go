package theme

import "github.com/umputun/shelf/app/enum"

// Resolve returns the scheme to apply. An explicit light or dark preference
// wins, ThemeSystem follows the host scheme.
func Resolve(pref enum.Theme, system enum.Scheme) enum.Scheme {
	if s, ok := pref.Scheme(); ok {
		return s
	}
	return system
}
