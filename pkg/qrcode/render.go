package qrcode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// renderTable writes the symbol as an HTML table, one cell per module, with
// the margin drawn as a light border.
func renderTable(sym *Symbol, opts Options) string {
	cell := px(opts.ModuleSize)
	border := px(float64(opts.margin()) * opts.ModuleSize)

	var sb strings.Builder
	sb.Grow(sym.Size * sym.Size * 24)

	sb.WriteString(`<table class="qrcode" cellspacing="0" cellpadding="0" style="border:`)
	sb.WriteString(border)
	sb.WriteString(`px solid #fff;border-collapse:collapse;margin:0;padding:0;background:#fff">`)
	for y := 0; y < sym.Size; y++ {
		sb.WriteString("<tr>")
		for x := 0; x < sym.Size; x++ {
			if sym.Dark(x, y) {
				sb.WriteString(`<td class="on" style="width:`)
			} else {
				sb.WriteString(`<td class="off" style="width:`)
			}
			sb.WriteString(cell)
			sb.WriteString("px;height:")
			sb.WriteString(cell)
			sb.WriteString("px;padding:0;background:")
			if sym.Dark(x, y) {
				sb.WriteString("#000")
			} else {
				sb.WriteString("#fff")
			}
			sb.WriteString(`"></td>`)
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}

// maxRasterSide keeps the float to int conversion of the image side in range.
const maxRasterSide = 1 << 20

// rasterSide returns the image side in pixels.
func rasterSide(sym *Symbol, opts Options) (int, error) {
	modules := float64(sym.Size) + 2*float64(opts.margin())
	side := math.Ceil(modules * opts.ModuleSize)
	if math.IsNaN(side) || side > maxRasterSide {
		return 0, fmt.Errorf("%w: image side of %v px is out of range", ErrInvalidOptions, side)
	}
	return max(int(side), 1), nil
}

// drawSymbol paints the dark modules, offset by the margin. Module edges are
// rounded to whole pixels so fractional module sizes tile without gaps.
func drawSymbol(c Canvas, sym *Symbol, opts Options) {
	m := opts.margin()
	edge := func(i int) int { return int(math.Round(float64(i+m) * opts.ModuleSize)) }

	for y := 0; y < sym.Size; y++ {
		y0, y1 := edge(y), edge(y+1)
		for x := 0; x < sym.Size; x++ {
			if !sym.Dark(x, y) {
				continue
			}
			x0, x1 := edge(x), edge(x+1)
			c.Fill(x0, y0, x1-x0, y1-y0)
		}
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
