package colour

import (
	"fmt"
	"math"
	"strings"
)

// sRGB gamma expansion and WCAG 2.0 luminance weights.
const (
	linearThreshold = 0.03928
	linearDivisor   = 12.92
	gammaOffset     = 0.055
	gammaDivisor    = 1.055
	gammaExponent   = 2.4

	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722

	// contrastFlare is added to both luminances in the contrast ratio.
	contrastFlare = 0.05
)

// Luminance calculates the relative luminance of an sRGB colour according to WCAG 2.0.
// Channels are on the 0-255 scale. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(r, g, b float64) (float64, error) {
	if err := checkNumbers("Luminance", r, g, b); err != nil {
		return 0, err
	}
	return luminance(r, g, b), nil
}

func luminance(r, g, b float64) float64 {
	return redWeight*gammaExpand(r/rgbMax) + greenWeight*gammaExpand(g/rgbMax) + blueWeight*gammaExpand(b/rgbMax)
}

// gammaExpand converts a normalised gamma-encoded component to linear light.
func gammaExpand(v float64) float64 {
	if v <= linearThreshold {
		return v / linearDivisor
	}
	return math.Pow((v+gammaOffset)/gammaDivisor, gammaExponent)
}

// ContrastResult is the contrast between two colours.
type ContrastResult struct {
	// Number is the contrast ratio truncated to two decimals.
	Number float64 `json:"number"`
	// Text is "L.LL:D.DD", the flare-adjusted lighter and darker luminances.
	Text string `json:"string"`
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two hex colours.
// The result lies between 1 and 21, where 21 is black against white.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(hex1, hex2 string) (ContrastResult, error) {
	c1, err := HexToRGBA(hex1)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("first colour: %w", err)
	}
	c2, err := HexToRGBA(hex2)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("second colour: %w", err)
	}

	light := c1.RGB().Luminance()
	dark := c2.RGB().Luminance()
	if light < dark {
		light, dark = dark, light
	}

	light += contrastFlare
	dark += contrastFlare
	contrast := light / dark

	return ContrastResult{
		Number: math.Floor(contrast*100) / 100,
		Text:   formatFixed(light, 2) + ":" + formatFixed(dark, 2),
	}, nil
}

// Band is a WCAG conformance level bound to an inclusive contrast ratio range.
type Band struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Contains reports whether ratio lies within the band, bounds included.
func (b Band) Contains(ratio float64) bool {
	return ratio >= b.Min && ratio <= b.Max
}

// Label returns the upper-cased band name used in level strings.
func (b Band) Label() string {
	return strings.ToUpper(b.Name)
}

// wcagBands is scanned in order; shared bounds go to the earlier band.
var wcagBands = []Band{
	{Name: "fail", Min: 0, Max: 3},
	{Name: "aa Large", Min: 3, Max: 4.5},
	{Name: "aa", Min: 4.5, Max: 7},
	{Name: "aaa", Min: 7, Max: 22},
}

// Bands returns the WCAG bands in classification order.
func Bands() []Band {
	out := make([]Band, len(wcagBands))
	copy(out, wcagBands)
	return out
}

// WCAGBand returns the first band containing ratio.
func WCAGBand(ratio float64) (Band, error) {
	if err := checkNumbers("WCAGBand", ratio); err != nil {
		return Band{}, err
	}
	for _, b := range wcagBands {
		if b.Contains(ratio) {
			return b, nil
		}
	}
	return Band{}, fmt.Errorf("%w: contrast ratio %v is outside [0, 22]", ErrOutOfRange, ratio)
}

// WCAGLevel classifies a contrast ratio as "wcag: DD.DD (LEVEL)",
// e.g. "wcag: 08.00 (AAA)".
func WCAGLevel(ratio float64) (string, error) {
	band, err := WCAGBand(ratio)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("wcag: %s (%s)", padRatio(formatFixed(ratio, 2)), band.Label()), nil
}

// padRatio pads a formatted ratio to at least four characters with trailing
// zeros, then to five with leading zeros.
func padRatio(s string) string {
	if n := 4 - len(s); n > 0 {
		s += strings.Repeat("0", n)
	}
	if n := 5 - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return s
}
