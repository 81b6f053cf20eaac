// Package ui contains types for styling text displayed on a terminal.
package ui

import "strings"

// Style specifies how something (mostly a string) shall be displayed.
type Style struct {
	Foreground *Color
	Bold       bool
	Dim        bool
	Underlined bool
}

// Fg returns a Style with the given foreground color.
func Fg(c Color) Style { return Style{Foreground: &c} }

// SGR returns SGR sequence for the style.
func (s Style) SGR() string {
	var sgr []string

	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	addIf(s.Underlined, "4")
	if s.Foreground != nil {
		sgr = append(sgr, s.Foreground.fgSGR())
	}

	return strings.Join(sgr, ";")
}

// VTString returns s wrapped in the escape sequences that apply the style
// and reset it afterwards. If the style is empty, s is returned unchanged.
func (s Style) VTString(text string) string {
	sgr := s.SGR()
	if sgr == "" {
		return text
	}
	return "\033[" + sgr + "m" + text + "\033[m"
}

// Styler applies styles to text, or leaves it alone when disabled.
type Styler struct {
	Enabled bool
}

// Apply returns text styled with style if the Styler is enabled, or text
// itself otherwise.
func (st Styler) Apply(text string, style Style) string {
	if !st.Enabled {
		return text
	}
	return style.VTString(text)
}
