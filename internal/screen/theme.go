package screen

import (
	"github.com/fatih/color"
)

type Theme struct {
	title    *color.Color
	selected *color.Color
	muted    *color.Color
	nav      *color.Color
	good     *color.Color
	bad      *color.Color
}

// NewTheme builds the palette. With colors off every style prints plain
// text, which keeps views stable in tests and dumb terminals.
func NewTheme(colors bool) *Theme {
	t := &Theme{
		title:    color.New(color.FgHiCyan, color.Bold),
		selected: color.New(color.FgHiYellow, color.Bold),
		muted:    color.New(color.FgHiBlack),
		nav:      color.New(color.FgBlue),
		good:     color.New(color.FgGreen),
		bad:      color.New(color.FgRed),
	}
	for _, c := range []*color.Color{t.title, t.selected, t.muted, t.nav, t.good, t.bad} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

func (t *Theme) Title(s string) string    { return t.title.Sprint(s) }
func (t *Theme) Selected(s string) string { return t.selected.Sprint(s) }
func (t *Theme) Muted(s string) string    { return t.muted.Sprint(s) }
func (t *Theme) Nav(s string) string      { return t.nav.Sprint(s) }
func (t *Theme) Good(s string) string     { return t.good.Sprint(s) }
func (t *Theme) Bad(s string) string      { return t.bad.Sprint(s) }
