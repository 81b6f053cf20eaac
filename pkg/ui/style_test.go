package ui

import (
	"testing"

	. "github.com/elves/conslist/pkg/tt"
)

func TestStyleSGR(t *testing.T) {
	Test(t, Style.SGR,
		Args(Style{}).Rets(""),
		Args(Style{Bold: true, Dim: true, Underlined: true}).Rets("1;2;4"),
		Args(Fg(Red)).Rets("31"),
		Args(Fg(BrightBlack)).Rets("90"),
		Args(Style{Foreground: &Green, Bold: true}).Rets("1;32"),
	)
}

func TestStyleVTString(t *testing.T) {
	Test(t, Style.VTString,
		Args(Style{}, "foo").Rets("foo"),
		Args(Fg(Red), "foo").Rets("\033[31mfoo\033[m"),
		Args(Style{Bold: true}, "foo").Rets("\033[1mfoo\033[m"),
	)
}

func TestStyler(t *testing.T) {
	Test(t, Styler.Apply,
		Args(Styler{Enabled: true}, "foo", Fg(Cyan)).Rets("\033[36mfoo\033[m"),
		Args(Styler{Enabled: false}, "foo", Fg(Cyan)).Rets("foo"),
	)
}

func TestColorString(t *testing.T) {
	Test(t, Color.String,
		Args(Red).Rets("red"),
		Args(BrightBlack).Rets("bright-black"),
		Args(White).Rets("white"),
	)
}
