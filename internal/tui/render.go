package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"regionmap/internal/pathdata"
	"regionmap/internal/region"
)

// viewport maps viewbox units onto the braille microgrid of a w x h cell
// area, keeping the aspect ratio and applying zoom and pan.
type viewport struct {
	scale  float64
	ox, oy float64
}

func (m Model) viewport(w, h int) viewport {
	wMic, hMic := float64(w*2), float64(h*4)
	base := math.Min(wMic/region.ViewBoxWidth, hMic/region.ViewBoxHeight)
	s := base * m.zoom
	return viewport{
		scale: s,
		ox:    (wMic-region.ViewBoxWidth*s)/2 + float64(m.offsetX*2),
		oy:    (hMic-region.ViewBoxHeight*s)/2 + float64(m.offsetY*4),
	}
}

// toMicro maps a viewbox point to micro coords.
func (v viewport) toMicro(p pathdata.Point) (int, int) {
	return int(math.Round(p.X*v.scale + v.ox)), int(math.Round(p.Y*v.scale + v.oy))
}

// fromCell returns the viewbox point under the center of a map cell.
func (v viewport) fromCell(cx, cy int) pathdata.Point {
	mx := float64(cx*2) + 1
	my := float64(cy*4) + 2
	return pathdata.Point{X: (mx - v.ox) / v.scale, Y: (my - v.oy) / v.scale}
}

// raster draws every shape of the canvas, fill first then stroke gaps, in
// draw order.
func (m Model) raster(w, h int) *brailleBuf {
	br := newBrailleBuf(w, h)
	if m.canvas == nil {
		return br
	}
	v := m.viewport(w, h)
	hMic := h * 4
	for _, sh := range m.canvas.shapes {
		rings := make([][][2]int, 0, len(sh.lines))
		for _, l := range sh.lines {
			r := make([][2]int, 0, len(l))
			for _, p := range l {
				x, y := v.toMicro(p)
				r = append(r, [2]int{x, y})
			}
			rings = append(rings, r)
		}
		if sh.fill() != "" {
			// even-odd scanline fill across all rings of the shape
			for yMic := 0; yMic < hMic; yMic++ {
				var xs []int
				for _, ring := range rings {
					for i := 0; i < len(ring); i++ {
						a := ring[i]
						b := ring[(i+1)%len(ring)]
						if a[1] == b[1] { // horizontal edge: skip
							continue
						}
						y0, y1 := a[1], b[1]
						x0, x1 := a[0], b[0]
						if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
							t := float64(yMic-y0) / float64(y1-y0)
							xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
						}
					}
				}
				if len(xs) < 2 {
					continue
				}
				sort.Ints(xs)
				for i := 0; i+1 < len(xs); i += 2 {
					for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
						br.setPixel(xMic, yMic, sh.idx)
					}
				}
			}
		}
		if sh.stroked() {
			// borders are carved out of the fill so neighbours stay apart
			for _, r := range rings {
				for i := 0; i+1 < len(r); i++ {
					a, b := r[i], r[i+1]
					br.drawLineMicro(a[0], a[1], b[0], b[1], br.clearPixel)
				}
			}
		} else if sh.fill() == "" {
			for _, r := range rings {
				for i := 0; i+1 < len(r); i++ {
					a, b := r[i], r[i+1]
					br.drawLineMicro(a[0], a[1], b[0], b[1], func(x, y int) { br.setPixel(x, y, sh.idx) })
				}
			}
		}
	}
	return br
}

// renderMap returns the colored map area.
func (m Model) renderMap(w, h int) string {
	br := m.raster(w, h)
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		run := make([]rune, 0, w)
		owner := -2
		flush := func() {
			if len(run) == 0 {
				return
			}
			sb.WriteString(m.shapeStyle(owner).Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			o := br.owner[y][x]
			if br.m[y][x] == 0 {
				o = -1
			}
			if o != owner {
				flush()
				owner = o
			}
			run = append(run, br.glyph(x, y))
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) shapeStyle(idx int) lipgloss.Style {
	if m.canvas == nil || idx < 0 || idx >= len(m.canvas.shapes) {
		return lipgloss.NewStyle()
	}
	return outlineStyle(m.canvas.shapes[idx])
}
