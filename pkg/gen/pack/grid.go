package pack

// grid is an occupancy bitmap over the footprint at 10cm resolution. It is
// the collision structure for room packing; geometry stays in meters and is
// quantized only at the grid boundary.
type grid struct {
	w, l  int
	cells []bool
}

func newGrid(width, length float64) *grid {
	w := int(width * 10)
	l := int(length * 10)
	return &grid{w: w, l: l, cells: make([]bool, w*l)}
}

// free reports whether the cell region for a rectangle at (x, y) with the
// given dimensions is entirely unoccupied and inside the grid.
func (g *grid) free(x, y, width, length float64) bool {
	gx, gy := int(x*10), int(y*10)
	gw, gl := int(width*10), int(length*10)
	if gx < 0 || gy < 0 || gx+gw > g.w || gy+gl > g.l {
		return false
	}
	for i := gx; i < gx+gw; i++ {
		row := i * g.l
		for j := gy; j < gy+gl; j++ {
			if g.cells[row+j] {
				return false
			}
		}
	}
	return true
}

// mark occupies the cell region for a rectangle at (x, y). Regions partially
// outside the grid are clipped.
func (g *grid) mark(x, y, width, length float64) {
	gx, gy := int(x*10), int(y*10)
	gw, gl := int(width*10), int(length*10)
	for i := max(gx, 0); i < min(gx+gw, g.w); i++ {
		row := i * g.l
		for j := max(gy, 0); j < min(gy+gl, g.l); j++ {
			g.cells[row+j] = true
		}
	}
}
