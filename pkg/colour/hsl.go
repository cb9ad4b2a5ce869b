package colour

import (
	"fmt"
	"math"
)

// HSL is a colour in display form: hue in degrees, saturation and lightness
// as percentages, each formatted with two decimals ("209.88", "100.00%").
type HSL struct {
	H string `json:"h"`
	S string `json:"s"`
	L string `json:"l"`
}

// String returns the colour in CSS notation, e.g. "hsl(209.88, 100.00%, 50.00%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s, %s)", c.H, c.S, c.L)
}

// NumericHSL is a colour in HSL with plain numbers.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type NumericHSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Display formats the colour as HSL.
func (c NumericHSL) Display() HSL {
	return HSL{
		H: formatFixed(c.H, 2),
		S: formatFixed(c.S, 2) + "%",
		L: formatFixed(c.L, 2) + "%",
	}
}

// RGBToHSL converts 0-255 RGB channels to display-form HSL.
func RGBToHSL(r, g, b float64) (HSL, error) {
	if err := checkNumbers("RGBToHSL", r, g, b); err != nil {
		return HSL{}, err
	}
	return rgbToNHSL(r, g, b).Display(), nil
}

// RGBToNHSL converts 0-255 RGB channels to numeric HSL.
func RGBToNHSL(r, g, b float64) (NumericHSL, error) {
	if err := checkNumbers("RGBToNHSL", r, g, b); err != nil {
		return NumericHSL{}, err
	}
	return rgbToNHSL(r, g, b), nil
}

func rgbToNHSL(r, g, b float64) NumericHSL {
	r /= rgbMax
	g /= rgbMax
	b /= rgbMax

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l := (maxVal + minVal) / 2
	var h, s float64

	if maxVal != minVal {
		delta := maxVal - minVal
		if l < 0.5 {
			s = delta / (maxVal + minVal)
		} else {
			s = delta / (2 - maxVal - minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		default:
			h = 4 + (r-g)/delta
		}
	}

	h *= 60
	if h < 0 {
		h += 360
	}

	return NumericHSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB. h, s and l are fractions in [0, 1].
// Channels are rounded to the nearest integer.
func HSLToRGB(h, s, l float64) (RGB, error) {
	if err := checkNumbers("HSLToRGB", h, s, l); err != nil {
		return RGB{}, err
	}

	var r, g, b float64
	if s == 0 {
		// Achromatic (grey).
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{
		R: clampChannel(r * rgbMax),
		G: clampChannel(g * rgbMax),
		B: clampChannel(b * rgbMax),
	}, nil
}

// hueToRGB is a helper for HSL to RGB conversion. t is a hue fraction
// wrapped once into [0, 1].
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// ShiftHue rotates the hue of a colour by deg degrees.
// deg must lie within [0, 100]; the shifted hue wraps around 360.
func ShiftHue(rgb RGB, deg float64) (RGB, error) {
	hsl := rgb.NHSL()

	if math.IsNaN(deg) || deg < 0 || deg > 100 {
		return RGB{}, fmt.Errorf("%w: hue shift %v must be within [0, 100]", ErrOutOfRange, deg)
	}

	h := hsl.H + deg
	if h < 0 {
		h += 360
	}
	if h > 360 {
		h -= 360
	}

	return HSLToRGB(h/360, hsl.S/100, hsl.L/100)
}
