package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorsheet/internal/preview"
	"github.com/jmylchreest/colorsheet/pkg/colour"
)

type luminanceResult struct {
	Input     string  `json:"input"`
	Hex       string  `json:"hex"`
	Luminance float64 `json:"luminance"`
}

type contrastResult struct {
	Foreground string      `json:"foreground"`
	Background string      `json:"background"`
	Ratio      float64     `json:"number"`
	Text       string      `json:"string"`
	Level      string      `json:"level"`
	Band       colour.Band `json:"band"`
}

type wcagResult struct {
	Ratio float64     `json:"ratio"`
	Level string      `json:"level"`
	Band  colour.Band `json:"band"`
}

func newLuminanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "luminance <colour>...",
		Short: "Compute WCAG relative luminance",
		Long: `Compute the WCAG 2.0 relative luminance of one or more colours,
from 0 (black) to 1 (white).

Examples:
  colorsheet luminance '#808080' white`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			withPreview := a.showPreview(cmd)
			headers := []string{"INPUT", "HEX", "LUMINANCE"}
			if withPreview {
				headers = append(headers, "PREVIEW")
			}
			table := NewTable(headers...)

			results := make([]luminanceResult, 0, len(args))
			for _, arg := range args {
				c, err := parseColour(arg)
				if err != nil {
					return err
				}
				rgb := c.RGB()
				lum, err := colour.Luminance(float64(rgb.R), float64(rgb.G), float64(rgb.B))
				if err != nil {
					return err
				}
				a.logger.Debug("computed luminance", "input", arg, "luminance", lum)

				r := luminanceResult{Input: arg, Hex: rgb.Hex(), Luminance: lum}
				results = append(results, r)

				row := []string{r.Input, r.Hex, formatLuminance(lum)}
				if withPreview {
					row = append(row, preview.Label(rgb, rgb.Hex(), a.config.PreviewWidth))
				}
				table.AddRow(row...)
			}
			return a.render(cmd, results, table)
		},
	}
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colours",
		Long: `Compute the WCAG 2.0 contrast ratio between two colours and classify it.

Levels: FAIL [0, 3], AA LARGE (3, 4.5], AA (4.5, 7], AAA (7, 22].
A ratio on a shared bound belongs to the lower level.

Examples:
  colorsheet contrast '#000' '#fff'
  colorsheet contrast --preview always navy gold`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := resolveHex(args[0])
			if err != nil {
				return err
			}
			bg, err := resolveHex(args[1])
			if err != nil {
				return err
			}

			ratio, err := colour.ContrastRatio(fg, bg)
			if err != nil {
				return err
			}
			band, err := colour.WCAGBand(ratio.Number)
			if err != nil {
				return err
			}
			level, err := colour.WCAGLevel(ratio.Number)
			if err != nil {
				return err
			}
			a.logger.Debug("computed contrast", "foreground", fg, "background", bg, "ratio", ratio.Number, "band", band.Name)

			result := contrastResult{
				Foreground: args[0],
				Background: args[1],
				Ratio:      ratio.Number,
				Text:       ratio.Text,
				Level:      level,
				Band:       band,
			}

			headers := []string{"FOREGROUND", "BACKGROUND", "RATIO", "LUMINANCE", "LEVEL"}
			row := []string{result.Foreground, result.Background, strconv.FormatFloat(result.Ratio, 'f', 2, 64), result.Text, band.Label()}
			if a.showPreview(cmd) {
				fgRGBA, _ := colour.HexToRGBA(fg)
				bgRGBA, _ := colour.HexToRGBA(bg)
				headers = append(headers, "PREVIEW")
				row = append(row, preview.Sample(fgRGBA.RGB(), bgRGBA.RGB(), "Aa", a.config.PreviewWidth))
			}
			table := NewTable(headers...)
			table.AddRow(row...)

			return a.render(cmd, result, table)
		},
	}
}

func newWCAGCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wcag <ratio>",
		Short: "Classify a contrast ratio against WCAG levels",
		Long: `Classify a contrast ratio between 0 and 22 as FAIL, AA LARGE, AA or AAA.

Examples:
  colorsheet wcag 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := parseNumber("ratio", args[0])
			if err != nil {
				return err
			}
			band, err := colour.WCAGBand(ratio)
			if err != nil {
				return err
			}
			level, err := colour.WCAGLevel(ratio)
			if err != nil {
				return err
			}

			table := NewTable("RATIO", "LEVEL")
			table.AddRow(args[0], level)
			return a.render(cmd, wcagResult{Ratio: ratio, Level: level, Band: band}, table)
		},
	}
}
