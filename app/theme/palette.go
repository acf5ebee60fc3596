// Package theme resolves the effective light/dark theme from the user's stored
// preference and the host's color-scheme signal, and applies it to a surface.
package theme

import (
	"strings"

	"github.com/umputun/shelf/app/enum"
)

// Palette is the set of named color variables applied for a scheme.
type Palette struct {
	Background        string `json:"background"`
	Foreground        string `json:"foreground"`
	Primary           string `json:"primary"`
	Secondary         string `json:"secondary"`
	Accent            string `json:"accent"`
	Border            string `json:"border"`
	Muted             string `json:"muted"`
	Card              string `json:"card"`
	CardForeground    string `json:"card-foreground"`
	Popover           string `json:"popover"`
	PopoverForeground string `json:"popover-foreground"`
}

// Var is a single CSS custom property, Name includes the leading "--".
type Var struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LightPalette and DarkPalette are the fixed palettes per resolved scheme.
var (
	LightPalette = Palette{
		Background:        "#ffffff",
		Foreground:        "#171717",
		Primary:           "#3b82f6",
		Secondary:         "#6b7280",
		Accent:            "#f59e0b",
		Border:            "#e5e7eb",
		Muted:             "#f3f4f6",
		Card:              "#ffffff",
		CardForeground:    "#171717",
		Popover:           "#ffffff",
		PopoverForeground: "#171717",
	}

	DarkPalette = Palette{
		Background:        "#0a0a0a",
		Foreground:        "#ededed",
		Primary:           "#60a5fa",
		Secondary:         "#9ca3af",
		Accent:            "#fbbf24",
		Border:            "#374151",
		Muted:             "#1f2937",
		Card:              "#111827",
		CardForeground:    "#f9fafb",
		Popover:           "#111827",
		PopoverForeground: "#f9fafb",
	}
)

// PaletteFor returns the palette for the given scheme.
func PaletteFor(s enum.Scheme) Palette {
	if s.IsDark() {
		return DarkPalette
	}
	return LightPalette
}

// Vars returns the palette as --color-* custom properties in a stable order.
func (p Palette) Vars() []Var {
	return []Var{
		{Name: "--color-background", Value: p.Background},
		{Name: "--color-foreground", Value: p.Foreground},
		{Name: "--color-primary", Value: p.Primary},
		{Name: "--color-secondary", Value: p.Secondary},
		{Name: "--color-accent", Value: p.Accent},
		{Name: "--color-border", Value: p.Border},
		{Name: "--color-muted", Value: p.Muted},
		{Name: "--color-card", Value: p.Card},
		{Name: "--color-card-foreground", Value: p.CardForeground},
		{Name: "--color-popover", Value: p.Popover},
		{Name: "--color-popover-foreground", Value: p.PopoverForeground},
	}
}

// Style renders the palette as an inline style declaration list.
func (p Palette) Style() string {
	vars := p.Vars()
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		parts = append(parts, v.Name+": "+v.Value)
	}
	return strings.Join(parts, "; ")
}

// Classes returns the root class tokens for a scheme, exactly one is set.
func Classes(s enum.Scheme) (set, unset string) {
	return s.String(), s.Toggle().String()
}
