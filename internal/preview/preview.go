// Package preview renders colours as ANSI true-colour swatches.
package preview

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/colorsheet/internal/config"
	"github.com/jmylchreest/colorsheet/pkg/colour"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

var (
	black = colour.RGB{R: 0, G: 0, B: 0}
	white = colour.RGB{R: 255, G: 255, B: 255}
)

// Swatch returns a solid block of the given colour, width characters wide.
func Swatch(c colour.RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// Label returns a swatch with text centred on it. The text is black or white,
// whichever contrasts more with the swatch.
func Label(c colour.RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	return background(c) + foreground(TextColour(c)) + centre(text, width) + ansiReset
}

// centre truncates or pads text to exactly width characters.
func centre(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
}

// TextColour picks black or white text for the given background by WCAG contrast.
func TextColour(bg colour.RGB) colour.RGB {
	lum := bg.Luminance()
	onBlack := (lum + 0.05) / 0.05
	onWhite := 1.05 / (lum + 0.05)
	if onBlack >= onWhite {
		return black
	}
	return white
}

func background(c colour.RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func foreground(c colour.RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// Enabled reports whether swatches should be written to out for the given mode.
// In auto mode swatches are shown only when out is a terminal.
func Enabled(mode string, out io.Writer) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := out.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Sample renders text in the foreground colour on the background colour,
// centred in a block width characters wide.
func Sample(fg, bg colour.RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(bg) + foreground(fg) + centre(text, width) + ansiReset
}
