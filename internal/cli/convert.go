package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorsheet/pkg/colour"
)

func newHexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hex <colour>...",
		Short: "Convert hex colours to RGB(A) and HSL",
		Long: `Convert one or more hex colours (or SVG colour names) to RGB(A), HSL and
relative luminance.

Alpha from 4 and 8 digit forms is reported as a raw 0-255 value.

Examples:
  # Describe a colour
  colorsheet hex '#ff8000'

  # Shorthand, alpha and names can be mixed
  colorsheet hex fa0 '#11223380' steelblue

  # JSON output
  colorsheet hex -f json '#123456'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]colourResult, 0, len(args))
			for _, arg := range args {
				c, err := parseColour(arg)
				if err != nil {
					return err
				}
				a.logger.Debug("parsed colour", "input", arg, "rgba", c.String())
				results = append(results, describe(arg, c))
			}
			return a.renderColours(cmd, results)
		},
	}
}

func newRGBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb <r> <g> <b>",
		Short: "Convert RGB channels to hex and HSL",
		Long: `Convert red, green and blue channels (0-255) to hex, HSL and relative luminance.

Fractional channels are accepted; hex output rounds them to the nearest integer.

Examples:
  colorsheet rgb 255 128 0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ch [3]float64
			for i, name := range []string{"red", "green", "blue"} {
				v, err := parseInRange(name, args[i], 0, 255)
				if err != nil {
					return err
				}
				ch[i] = v
			}

			hsl, err := colour.RGBToHSL(ch[0], ch[1], ch[2])
			if err != nil {
				return err
			}
			lum, err := colour.Luminance(ch[0], ch[1], ch[2])
			if err != nil {
				return err
			}
			hex := colour.RGBToHex(ch[0], ch[1], ch[2])
			c, err := colour.HexToRGBA(hex)
			if err != nil {
				return err
			}
			a.logger.Debug("converted rgb", "r", ch[0], "g", ch[1], "b", ch[2], "hex", hex)

			return a.renderColours(cmd, []colourResult{{
				Input:     "rgb(" + args[0] + ", " + args[1] + ", " + args[2] + ")",
				Hex:       hex,
				RGBA:      c,
				HSL:       hsl,
				Luminance: lum,
			}})
		},
	}
}

func newHSLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hsl <h> <s> <l>",
		Short: "Convert HSL fractions to RGB",
		Long: `Convert hue, saturation and lightness to RGB. All three values are
fractions in [0, 1]: a hue of 0.5 is 180 degrees, a saturation of 0.25 is 25%.

Examples:
  # Teal
  colorsheet hsl 0.5 0.5 0.5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [3]float64
			for i, name := range []string{"hue", "saturation", "lightness"} {
				f, err := parseInRange(name, args[i], 0, 1)
				if err != nil {
					return err
				}
				v[i] = f
			}

			rgb, err := colour.HSLToRGB(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			a.logger.Debug("converted hsl", "h", v[0], "s", v[1], "l", v[2], "rgb", rgb.String())

			input := "hsl(" + args[0] + ", " + args[1] + ", " + args[2] + ")"
			return a.renderColours(cmd, []colourResult{describe(input, colour.RGBA{R: rgb.R, G: rgb.G, B: rgb.B})})
		},
	}
}

func newShiftCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shift <colour> <degrees>",
		Short: "Rotate the hue of a colour",
		Long: `Rotate the hue of a colour by 0 to 100 degrees, wrapping around 360.

Examples:
  # Red to yellow
  colorsheet shift '#ff0000' 60`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColour(args[0])
			if err != nil {
				return err
			}
			deg, err := parseNumber("degrees", args[1])
			if err != nil {
				return err
			}

			shifted, err := colour.ShiftHue(c.RGB(), deg)
			if err != nil {
				return err
			}
			a.logger.Debug("shifted hue", "from", c.RGB().Hex(), "to", shifted.Hex(), "degrees", deg)

			return a.renderColours(cmd, []colourResult{
				describe(args[0], colour.RGBA{R: c.R, G: c.G, B: c.B}),
				describe("shift +"+args[1], colour.RGBA{R: shifted.R, G: shifted.G, B: shifted.B}),
			})
		},
	}
}
