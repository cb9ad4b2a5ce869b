package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/jmylchreest/colorsheet/pkg/colour"
)

// resolveHex returns s when it is a valid hex colour, otherwise the hex form
// of the SVG colour name s. The hex parse error is returned when neither applies.
func resolveHex(s string) (string, error) {
	_, err := colour.HexToRGBA(s)
	if err == nil {
		return s, nil
	}
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return colour.RGBToHex(float64(c.R), float64(c.G), float64(c.B)), nil
	}
	return "", err
}

// parseColour parses a hex colour or SVG colour name.
func parseColour(s string) (colour.RGBA, error) {
	hex, err := resolveHex(s)
	if err != nil {
		return colour.RGBA{}, err
	}
	return colour.HexToRGBA(hex)
}

// parseNumber parses a command-line number, naming the argument on failure.
func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", colour.ErrInvalidArgument, name, s)
	}
	return v, nil
}

// parseInRange parses a number and checks it lies within [lo, hi].
func parseInRange(name, s string, lo, hi float64) (float64, error) {
	v, err := parseNumber(name, s)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s %v must be within [%v, %v]", colour.ErrOutOfRange, name, v, lo, hi)
	}
	return v, nil
}
