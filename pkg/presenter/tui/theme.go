package tui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// Theme captures the prefixes printed in front of terminal feedback.
type Theme struct {
	ErrorPrefix   string
	SuccessPrefix string
	NoticePrefix  string
}

// PlainTheme uses ASCII markers only.
func PlainTheme() Theme {
	return Theme{
		ErrorPrefix:   "[x]",
		SuccessPrefix: "[ok]",
		NoticePrefix:  "[*]",
	}
}

// ColorTheme uses ANSI colours matching the danger/success palette.
func ColorTheme() Theme {
	return Theme{
		ErrorPrefix:   ansi.Color("✗", "red+b"),
		SuccessPrefix: ansi.Color("✓", "green+b"),
		NoticePrefix:  ansi.Color("●", "green"),
	}
}

// AutoTheme picks ColorTheme when stdout is a terminal.
func AutoTheme() Theme {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return ColorTheme()
	}
	return PlainTheme()
}
