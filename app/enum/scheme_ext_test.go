package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheme_Toggle(t *testing.T) {
	assert.Equal(t, SchemeDark, SchemeLight.Toggle())
	assert.Equal(t, SchemeLight, SchemeDark.Toggle())
}

func TestScheme_IsDark(t *testing.T) {
	assert.True(t, SchemeDark.IsDark())
	assert.False(t, SchemeLight.IsDark())
	assert.True(t, SchemeFromDark(true).IsDark())
	assert.Equal(t, SchemeLight, SchemeFromDark(false))
}

func TestParseScheme_RejectsSystem(t *testing.T) {
	_, err := ParseScheme("system")
	assert.Error(t, err, "system is a preference, never a concrete scheme")
}

func TestScheme_Theme(t *testing.T) {
	assert.Equal(t, ThemeDark, SchemeDark.Theme())
	assert.Equal(t, ThemeLight, SchemeLight.Theme())
	for _, s := range SchemeValues {
		back, ok := s.Theme().Scheme()
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}
}
