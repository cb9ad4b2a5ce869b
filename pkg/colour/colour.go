// Package colour provides sRGB and HSL colour conversions, relative luminance
// and WCAG contrast classification.
//
// Every function is pure and safe for concurrent use. Numeric channel
// arguments are float64; NaN and infinite values are rejected with
// ErrInvalidArgument.
package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned for non-numeric or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidColour is returned when a hex colour string cannot be parsed.
	ErrInvalidColour = fmt.Errorf("%w: invalid hex colour", ErrInvalidArgument)

	// ErrOutOfRange is returned when a numeric argument lies outside the
	// domain an operation accepts.
	ErrOutOfRange = fmt.Errorf("%w: value out of range", ErrInvalidArgument)
)

// rgbMax is the largest value of an 8-bit channel.
const rgbMax = 255

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return RGBToHex(float64(rgb.R), float64(rgb.G), float64(rgb.B))
}

// Luminance returns the relative luminance of the colour.
func (rgb RGB) Luminance() float64 {
	return luminance(float64(rgb.R), float64(rgb.G), float64(rgb.B))
}

// NHSL returns the colour in numeric HSL form.
func (rgb RGB) NHSL() NumericHSL {
	return rgbToNHSL(float64(rgb.R), float64(rgb.G), float64(rgb.B))
}

// HSL returns the colour in display HSL form.
func (rgb RGB) HSL() HSL {
	return rgb.NHSL().Display()
}

// RGBA is an RGB colour with an optional alpha channel.
// Alpha is a raw 0-255 value and is only meaningful when HasAlpha is set.
type RGBA struct {
	R        uint8
	G        uint8
	B        uint8
	A        uint8
	HasAlpha bool
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// String returns "rgba(r, g, b, a)" when alpha is present, "rgb(r, g, b)" otherwise.
func (c RGBA) String() string {
	if !c.HasAlpha {
		return c.RGB().String()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

type rgbaJSON struct {
	R uint8  `json:"r"`
	G uint8  `json:"g"`
	B uint8  `json:"b"`
	A *uint8 `json:"a,omitempty"`
}

// MarshalJSON encodes the colour as {"r":..,"g":..,"b":..} plus "a" when alpha is present.
func (c RGBA) MarshalJSON() ([]byte, error) {
	out := rgbaJSON{R: c.R, G: c.G, B: c.B}
	if c.HasAlpha {
		a := c.A
		out.A = &a
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (c *RGBA) UnmarshalJSON(data []byte) error {
	var in rgbaJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = RGBA{R: in.R, G: in.G, B: in.B}
	if in.A != nil {
		c.A = *in.A
		c.HasAlpha = true
	}
	return nil
}

// checkNumbers rejects NaN and infinite arguments.
func checkNumbers(op string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s argument %d is not a number (%v)", ErrInvalidArgument, op, i+1, v)
		}
	}
	return nil
}
