// Package svg serializes a render.Chart into a standalone SVG document, the
// file-based output sink for rendered schedules.
package svg

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/ganttviz/internal/render"
)

// Render draws the chart as an SVG document string. Layout is a straight
// linear mapping: time onto the horizontal plot area, one evenly-spaced lane
// per employee row with row 0 at the bottom.
func Render(c *render.Chart, theme Theme) string {
	plotW := float64(theme.Layout.Width - theme.Layout.MarginLeft - theme.Layout.MarginRight)
	plotH := float64(theme.Layout.Height - theme.Layout.MarginTop - theme.Layout.MarginBottom)

	maxTime := c.MaxTime
	if maxTime <= 0 {
		maxTime = 1
	}
	xAt := func(t float64) float64 {
		return float64(theme.Layout.MarginLeft) + t/maxTime*plotW
	}

	rowH := plotH / float64(len(c.Rows))
	yAt := func(row int) float64 {
		// Row 0 sits at the bottom, matching an ascending employee axis.
		return float64(theme.Layout.MarginTop) + plotH - (float64(row)+0.5)*rowH
	}
	barH := rowH * 0.5

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<marker id="arrowhead" markerWidth="8" markerHeight="6" refX="7" refY="3" orient="auto">
<polygon points="0 0, 8 3, 0 6" fill="%s"/>
</marker>
</defs>
`, theme.Layout.Width, theme.Layout.Height, theme.Colors.Background, theme.Colors.Arrow)

	writeGrid(&b, c, theme, xAt, maxTime)
	writeAxes(&b, c, theme, yAt)

	// Bars in task index order; later bars may overlap earlier ones on a
	// shared lane, which is deterministic and accepted.
	for _, bar := range c.Bars {
		x := xAt(bar.Start)
		w := xAt(bar.End) - x
		fmt.Fprintf(&b,
			"<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" fill-opacity=\"0.8\" stroke=\"%s\"/>\n",
			x, yAt(bar.Row)-barH/2, w, barH, theme.barFill(bar.Color), theme.Colors.BarStroke)
	}

	for _, a := range c.Arrows {
		fmt.Fprintf(&b,
			"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"1.5\" marker-end=\"url(#arrowhead)\"/>\n",
			xAt(a.FromX), yAt(a.FromRow), xAt(a.ToX), yAt(a.ToRow), theme.Colors.Arrow)
	}

	// Labels go last so they stay readable over bars and arrows.
	for _, bar := range c.Bars {
		mid := xAt((bar.Start + bar.End) / 2)
		fmt.Fprintf(&b,
			"<text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" dominant-baseline=\"middle\" font-family=\"%s\" font-size=\"%d\" font-weight=\"bold\" fill=\"%s\">%s</text>\n",
			mid, yAt(bar.Row), theme.Font.Family, theme.Font.Size-2, theme.Colors.BarLabel, escapeText(bar.Label))
	}

	fmt.Fprintf(&b,
		"<text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"%d\" font-weight=\"bold\" fill=\"%s\">%s</text>\n",
		theme.Layout.Width/2, theme.Layout.MarginTop/2, theme.Font.Family, theme.Font.Size+4, theme.Colors.Text, escapeText(c.Title))

	b.WriteString("</svg>\n")
	return b.String()
}

// WriteFile renders the chart and writes it to path.
func WriteFile(path string, c *render.Chart, theme Theme) error {
	if err := os.WriteFile(path, []byte(Render(c, theme)), 0644); err != nil {
		return fmt.Errorf("writing svg file: %w", err)
	}
	return nil
}

// writeGrid draws light dashed vertical lines at regular time ticks, with the
// tick value underneath each.
func writeGrid(b *strings.Builder, c *render.Chart, theme Theme, xAt func(float64) float64, maxTime float64) {
	top := float64(theme.Layout.MarginTop)
	bottom := float64(theme.Layout.Height - theme.Layout.MarginBottom)

	step := tickStep(maxTime)
	for t := 0.0; t <= maxTime+step/2; t += step {
		x := xAt(t)
		fmt.Fprintf(b,
			"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-dasharray=\"4 3\" stroke-opacity=\"0.7\"/>\n",
			x, top, x, bottom, theme.Colors.Grid)
		fmt.Fprintf(b,
			"<text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"%d\" fill=\"%s\">%g</text>\n",
			x, bottom+float64(theme.Font.Size)+4, theme.Font.Family, theme.Font.Size-1, theme.Colors.Text, t)
	}
}

// writeAxes draws the employee tick labels and the two axis captions.
func writeAxes(b *strings.Builder, c *render.Chart, theme Theme, yAt func(int) float64) {
	for i, row := range c.Rows {
		fmt.Fprintf(b,
			"<text x=\"%d\" y=\"%.1f\" text-anchor=\"end\" dominant-baseline=\"middle\" font-family=\"%s\" font-size=\"%d\" fill=\"%s\">%s</text>\n",
			theme.Layout.MarginLeft-8, yAt(i), theme.Font.Family, theme.Font.Size, theme.Colors.Text, escapeText(row.Label))
	}

	fmt.Fprintf(b,
		"<text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"%d\" fill=\"%s\">%s</text>\n",
		theme.Layout.Width/2, theme.Layout.Height-8, theme.Font.Family, theme.Font.Size, theme.Colors.Text, escapeText(c.XLabel))

	midY := theme.Layout.MarginTop + (theme.Layout.Height-theme.Layout.MarginTop-theme.Layout.MarginBottom)/2
	fmt.Fprintf(b,
		"<text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"%d\" fill=\"%s\" transform=\"rotate(-90 %d %d)\">%s</text>\n",
		14, midY, theme.Font.Family, theme.Font.Size, theme.Colors.Text, 14, midY, escapeText(c.YLabel))
}

// tickStep picks a 1/2/5-scaled step yielding roughly ten grid lines.
func tickStep(maxTime float64) float64 {
	steps := []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}
	for _, s := range steps {
		if maxTime/s <= 10 {
			return s
		}
	}
	return maxTime / 10
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
