package colour

import (
	"errors"
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{name: "black", r: 0, g: 0, b: 0, want: 0},
		{name: "white", r: 255, g: 255, b: 255, want: 1},
		{name: "red", r: 255, g: 0, b: 0, want: 0.2126},
		{name: "green", r: 0, g: 255, b: 0, want: 0.7152},
		{name: "blue", r: 0, g: 0, b: 255, want: 0.0722},
		{name: "mid grey", r: 128, g: 128, b: 128, want: 0.21586050011389923},
		{name: "linear segment", r: 10, g: 10, b: 10, want: 10.0 / 255 / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Luminance(tt.r, tt.g, tt.b)
			if err != nil {
				t.Fatalf("Luminance() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Luminance(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestLuminanceExtremes(t *testing.T) {
	if got, _ := Luminance(0, 0, 0); got != 0 {
		t.Errorf("Luminance(0, 0, 0) = %v, want exactly 0", got)
	}
	if got, _ := Luminance(255, 255, 255); got != 1 {
		t.Errorf("Luminance(255, 255, 255) = %v, want exactly 1", got)
	}
	if got, _ := Luminance(120, 120, 120); got == 0.3 {
		t.Errorf("Luminance(120, 120, 120) = %v, want a gamma-expanded value", got)
	}
}

func TestLuminanceRejectsNonNumbers(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
	}{
		{name: "NaN red", r: math.NaN(), g: 0, b: 0},
		{name: "NaN blue", r: 0, g: 0, b: math.NaN()},
		{name: "infinite green", r: 0, g: math.Inf(1), b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Luminance(tt.r, tt.g, tt.b); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Luminance() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name       string
		hex1, hex2 string
		want       ContrastResult
	}{
		{name: "black on white", hex1: "#000000", hex2: "#ffffff", want: ContrastResult{Number: 21, Text: "1.05:0.05"}},
		{name: "order independent", hex1: "#ffffff", hex2: "#000000", want: ContrastResult{Number: 21, Text: "1.05:0.05"}},
		{name: "grey on white", hex1: "#777", hex2: "#fff", want: ContrastResult{Number: 4.47, Text: "1.05:0.23"}},
		{name: "red on black", hex1: "#ff0000", hex2: "#000", want: ContrastResult{Number: 5.25, Text: "0.26:0.05"}},
		{name: "blue on yellow", hex1: "#336699", hex2: "#ffcc00", want: ContrastResult{Number: 3.96, Text: "0.69:0.18"}},
		{name: "identical", hex1: "#abcdef", hex2: "abcdef", want: ContrastResult{Number: 1, Text: "0.64:0.64"}},
		{name: "alpha ignored", hex1: "#00000080", hex2: "#ffff", want: ContrastResult{Number: 21, Text: "1.05:0.05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatio(tt.hex1, tt.hex2)
			if err != nil {
				t.Fatalf("ContrastRatio() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ContrastRatio(%q, %q) = %+v, want %+v", tt.hex1, tt.hex2, got, tt.want)
			}
		})
	}
}

func TestContrastRatioInvalid(t *testing.T) {
	if _, err := ContrastRatio("#zzz", "#fff"); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("ContrastRatio() error = %v, want ErrInvalidColour", err)
	}
	if _, err := ContrastRatio("#fff", "12"); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("ContrastRatio() error = %v, want ErrInvalidColour", err)
	}
}

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 21, want: "wcag: 21.00 (AAA)"},
		{ratio: 8, want: "wcag: 08.00 (AAA)"},
		{ratio: 22, want: "wcag: 22.00 (AAA)"},
		{ratio: 7, want: "wcag: 07.00 (AA)"},
		{ratio: 5.252, want: "wcag: 05.25 (AA)"},
		{ratio: 4.5, want: "wcag: 04.50 (AA LARGE)"},
		{ratio: 4.47, want: "wcag: 04.47 (AA LARGE)"},
		{ratio: 3, want: "wcag: 03.00 (FAIL)"},
		{ratio: 2.5, want: "wcag: 02.50 (FAIL)"},
		{ratio: 0, want: "wcag: 00.00 (FAIL)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := WCAGLevel(tt.ratio)
			if err != nil {
				t.Fatalf("WCAGLevel(%v) error = %v", tt.ratio, err)
			}
			if got != tt.want {
				t.Errorf("WCAGLevel(%v) = %q, want %q", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestWCAGLevelInvalid(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		wantErr error
	}{
		{name: "NaN", ratio: math.NaN(), wantErr: ErrInvalidArgument},
		{name: "negative", ratio: -1, wantErr: ErrOutOfRange},
		{name: "above maximum", ratio: 22.01, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WCAGLevel(tt.ratio); !errors.Is(err, tt.wantErr) {
				t.Errorf("WCAGLevel(%v) error = %v, want %v", tt.ratio, err, tt.wantErr)
			}
		})
	}
}

func TestWCAGBandBoundaries(t *testing.T) {
	for _, b := range Bands() {
		got, err := WCAGBand(b.Max)
		if err != nil {
			t.Fatalf("WCAGBand(%v) error = %v", b.Max, err)
		}
		if got != b {
			t.Errorf("WCAGBand(%v) = %q, want %q", b.Max, got.Name, b.Name)
		}
	}
}

func TestBandsReturnsCopy(t *testing.T) {
	bands := Bands()
	bands[0].Name = "changed"
	if Bands()[0].Name != "fail" {
		t.Error("Bands() exposed internal state")
	}
}
