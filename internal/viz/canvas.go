package viz

import "strings"

// Braille cells pack 2x4 dots per character, so a WxH canvas exposes a
// (W*2)x(H*4) dot grid. Dot bits within the 0x2800 block:
//
//	1  8
//	2  16
//	4  32
//	64 128
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a braille dot-matrix renderer.
type Canvas struct {
	Width, Height int // in characters
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
	return c
}

// DotWidth returns the canvas width in dots.
func (c *Canvas) DotWidth() int { return c.Width * 2 }

// DotHeight returns the canvas height in dots.
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y) in dot coordinates. Out-of-range dots are
// ignored so callers can plot unclipped data.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= dotBits[y%4][x%2]
}

// Unset turns off the dot at (x, y).
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= dotBits[y%4][x%2]
	if c.Grid[row][col] < brailleBase {
		c.Grid[row][col] = brailleBase
	}
}

// Clear blanks the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// DrawLine draws a Bresenham line between two dots.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Viewport maps world coordinates onto the dot grid, flipping y so world-up
// is screen-up.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Dot converts a world point to dot coordinates on c. ok is false when the
// point falls outside the viewport.
func (v Viewport) Dot(c *Canvas, x, y float64) (int, int, bool) {
	if v.MaxX == v.MinX || v.MaxY == v.MinY {
		return 0, 0, false
	}
	fx := (x - v.MinX) / (v.MaxX - v.MinX)
	fy := (y - v.MinY) / (v.MaxY - v.MinY)
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	px := int(fx * float64(c.DotWidth()-1))
	py := int((1 - fy) * float64(c.DotHeight()-1))
	return px, py, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
