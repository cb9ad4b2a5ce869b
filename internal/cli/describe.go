package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorsheet/internal/preview"
	"github.com/jmylchreest/colorsheet/pkg/colour"
)

// colourResult is one colour in every representation the tool prints.
type colourResult struct {
	Input     string      `json:"input"`
	Hex       string      `json:"hex"`
	RGBA      colour.RGBA `json:"rgba"`
	HSL       colour.HSL  `json:"hsl"`
	Luminance float64     `json:"luminance"`
}

func describe(input string, c colour.RGBA) colourResult {
	rgb := c.RGB()
	return colourResult{
		Input:     input,
		Hex:       rgb.Hex(),
		RGBA:      c,
		HSL:       rgb.HSL(),
		Luminance: rgb.Luminance(),
	}
}

// renderColours prints colour results as a table or JSON array.
func (a *app) renderColours(cmd *cobra.Command, results []colourResult) error {
	withPreview := a.showPreview(cmd)

	headers := []string{"INPUT", "HEX", "RGB", "HSL", "LUMINANCE"}
	if withPreview {
		headers = append(headers, "PREVIEW")
	}
	table := NewTable(headers...)

	for _, r := range results {
		row := []string{r.Input, r.Hex, r.RGBA.String(), r.HSL.String(), formatLuminance(r.Luminance)}
		if withPreview {
			row = append(row, preview.Swatch(r.RGBA.RGB(), a.config.PreviewWidth))
		}
		table.AddRow(row...)
	}

	return a.render(cmd, results, table)
}

func formatLuminance(l float64) string {
	return strconv.FormatFloat(l, 'f', 4, 64)
}
