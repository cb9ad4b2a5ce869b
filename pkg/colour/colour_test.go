package colour

import (
	"encoding/json"
	"testing"
)

func TestRGBMethods(t *testing.T) {
	rgb := RGB{R: 0, G: 128, B: 255}

	if got, want := rgb.String(), "rgb(0, 128, 255)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := rgb.Hex(), "#0080ff"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
	if got, want := rgb.HSL(), (HSL{H: "209.88", S: "100.00%", L: "50.00%"}); got != want {
		t.Errorf("HSL() = %+v, want %+v", got, want)
	}

	lum, err := Luminance(0, 128, 255)
	if err != nil {
		t.Fatalf("Luminance() error = %v", err)
	}
	if got := rgb.Luminance(); got != lum {
		t.Errorf("Luminance() = %v, want %v", got, lum)
	}
}

func TestRGBAString(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{name: "without alpha", c: RGBA{R: 1, G: 2, B: 3}, want: "rgb(1, 2, 3)"},
		{name: "with alpha", c: RGBA{R: 1, G: 2, B: 3, A: 128, HasAlpha: true}, want: "rgba(1, 2, 3, 128)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBAJSON(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{name: "without alpha", c: RGBA{R: 255, G: 128}, want: `{"r":255,"g":128,"b":0}`},
		{name: "with alpha", c: RGBA{R: 17, G: 34, B: 51, A: 128, HasAlpha: true}, want: `{"r":17,"g":34,"b":51,"a":128}`},
		{name: "transparent alpha kept", c: RGBA{HasAlpha: true}, want: `{"r":0,"g":0,"b":0,"a":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.c)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var back RGBA
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if back != tt.c {
				t.Errorf("Unmarshal() = %+v, want %+v", back, tt.c)
			}
		})
	}
}
