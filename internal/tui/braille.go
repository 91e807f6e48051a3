package tui

type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	owner [][]int   // topmost shape that touched the cell, -1 for none
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	o := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		o[i] = make([]int, w)
		for j := range o[i] {
			o[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, owner: o}
}

// bitAt maps micro coords (2x4 per cell) to a cell and its dot bit.
func (b *brailleBuf) bitAt(mx, my int) (cx, cy int, bit uint8, ok bool) {
	if mx < 0 || my < 0 {
		return 0, 0, 0, false
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return 0, 0, 0, false
	}
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	return cx, cy, bit, true
}

// setPixel sets a micro-pixel on behalf of shape id.
func (b *brailleBuf) setPixel(mx, my, id int) {
	cx, cy, bit, ok := b.bitAt(mx, my)
	if !ok {
		return
	}
	b.m[cy][cx] |= bit
	b.owner[cy][cx] = id
}

func (b *brailleBuf) clearPixel(mx, my int) {
	cx, cy, bit, ok := b.bitAt(mx, my)
	if !ok {
		return
	}
	b.m[cy][cx] &^= bit
}

// drawLineMicro walks a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) glyph(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}
