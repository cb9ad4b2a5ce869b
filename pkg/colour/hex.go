package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGBA parses a hex colour string.
//
// Accepted forms, each with an optional leading '#':
//   - rgb and rgba shorthand, where every digit is doubled ("f" -> "ff")
//   - rrggbb and rrggbbaa
//
// Alpha is returned as its raw 0-255 value, it is not normalised.
func HexToRGBA(hex string) (RGBA, error) {
	if len(hex) < 3 {
		return RGBA{}, fmt.Errorf("%w: %q is too short", ErrInvalidColour, hex)
	}

	body := strings.TrimPrefix(hex, "#")
	if !isHexDigits(body) {
		return RGBA{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColour, hex)
	}

	var alpha string
	switch len(body) {
	case 3:
		body = expandShorthand(body)
	case 4:
		alpha = expandShorthand(body[3:])
		body = expandShorthand(body[:3])
	case 6:
	case 8:
		alpha = body[6:]
		body = body[:6]
	default:
		return RGBA{}, fmt.Errorf("%w: %q must have 3, 4, 6 or 8 digits", ErrInvalidColour, hex)
	}

	v, err := strconv.ParseUint(body, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColour, hex, err)
	}

	c := RGBA{
		R: uint8((v >> 16) & 0xff),
		G: uint8((v >> 8) & 0xff),
		B: uint8(v & 0xff),
	}

	if alpha != "" {
		a, err := parseAlpha(alpha)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColour, hex, err)
		}
		c.A = a
		c.HasAlpha = true
	}

	return c, nil
}

// parseAlpha prefixes the digit pair with "0x" and lets the integer parser
// infer the base from that prefix.
func parseAlpha(digits string) (uint8, error) {
	v, err := strconv.ParseUint("0x"+digits, 0, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// RGBToHex formats three channels as "#rrggbb".
// Channels are rounded and clamped into [0, 255]; NaN formats as "00".
func RGBToHex(r, g, b float64) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v float64) string {
	if math.IsNaN(v) {
		return "00"
	}
	return fmt.Sprintf("%02x", clampChannel(v))
}

// clampChannel rounds half up and clamps into [0, 255].
func clampChannel(v float64) uint8 {
	v = math.Floor(v + 0.5)
	switch {
	case v <= 0:
		return 0
	case v >= rgbMax:
		return rgbMax
	}
	return uint8(v)
}

func expandShorthand(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
