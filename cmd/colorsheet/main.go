// colorsheet - colour conversions and WCAG contrast checks
//
// colorsheet converts colours between hex, RGB(A) and HSL, computes relative
// luminance and classifies contrast ratios against WCAG levels.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/colorsheet/internal/cli"
)

func main() {
	cli.Execute()
}
