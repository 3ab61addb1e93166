// pkg/hexmap/layout.go
package hexmap

// Layout is the bounding rectangle of a collection and the canvas it is drawn
// on. It is derived per render and never stored.
type Layout struct {
	Columns    int     `json:"columns"`
	Rows       int     `json:"rows"`
	GridWidth  float64 `json:"grid_width"`
	GridHeight float64 `json:"grid_height"`
	MinQ       int     `json:"min_q"`
	MinR       int     `json:"min_r"`
	// Row parity of the cell holding the smallest and largest q.
	MinQEvenRow bool `json:"min_q_even_row"`
	MaxQEvenRow bool `json:"max_q_even_row"`
}

// extreme tracks the cell deciding the parity flag for min or max q.
type extreme struct {
	q, r int
	set  bool
}

// offer replaces the tracked cell when h has a better q, or the same q on a
// lower row. Equal (q, r) keeps the earlier cell.
func (e *extreme) offer(h Hex, better func(a, b int) bool) {
	switch {
	case !e.set, better(h.Q, e.q):
		e.q, e.r, e.set = h.Q, h.R, true
	case h.Q == e.q && h.R < e.r:
		e.r = h.R
	}
}

func less(a, b int) bool    { return a < b }
func greater(a, b int) bool { return a > b }

// ComputeLayout scans the collection once and returns its bounding rectangle.
//
// The canvas is padded by one extra column and three quarters of a row;
// these margins are fixed and not derived from the hex geometry.
//
// When several cells share the smallest (or largest) q, the one on the lowest
// row decides MinQEvenRow (or MaxQEvenRow), so the result does not depend on
// input order. An empty collection yields the zero Layout. Spans beyond
// MaxSpan are not supported; check them with Collection.Validate first.
func ComputeLayout(c *Collection, g Geometry) Layout {
	if c.Len() == 0 {
		return Layout{}
	}

	var minQ, maxQ extreme
	first := c.At(0).Hex
	minR, maxR := first.R, first.R

	for _, cell := range c.cells {
		h := cell.Hex
		minQ.offer(h, less)
		maxQ.offer(h, greater)
		if h.R < minR {
			minR = h.R
		}
		if h.R > maxR {
			maxR = h.R
		}
	}

	cols := maxQ.q - minQ.q + 1
	rows := maxR - minR + 1

	return Layout{
		Columns:     cols,
		Rows:        rows,
		GridWidth:   float64(cols+1) * g.Width,
		GridHeight:  (0.75*float64(rows) + 0.75) * g.Height,
		MinQ:        minQ.q,
		MinR:        minR,
		MinQEvenRow: Hex{R: minQ.r}.EvenRow(),
		MaxQEvenRow: Hex{R: maxQ.r}.EvenRow(),
	}
}

// Empty reports whether the layout covers no cells.
func (l Layout) Empty() bool {
	return l.Columns == 0 || l.Rows == 0
}

// MaxQ returns the largest column of the rectangle.
func (l Layout) MaxQ() int {
	return l.MinQ + l.Columns - 1
}

// MaxR returns the largest row of the rectangle.
func (l Layout) MaxR() int {
	return l.MinR + l.Rows - 1
}

// Contains reports whether h lies inside the bounding rectangle.
func (l Layout) Contains(h Hex) bool {
	if l.Empty() {
		return false
	}
	return h.Q >= l.MinQ && h.Q <= l.MaxQ() && h.R >= l.MinR && h.R <= l.MaxR()
}

// Origin returns the two vectors that center the occupied rectangle on the
// padded canvas: the canvas center (for the top-left of a hexagon box) and
// the offset of the rectangle's own center from the axial origin.
func (l Layout) Origin(g Geometry) (cx, cy, ox, oy float64) {
	cx = (l.GridWidth - g.Width) / 2
	cy = (l.GridHeight - g.Height) / 2
	ox = g.Width * (float64(l.MinQ) + float64(l.Columns)/2 - 0.5)
	oy = g.Height * (float64(l.MinR) + float64(l.Rows)/2 - 0.5)
	return
}

// Position returns the top-left corner of the box holding the hexagon at
// (col, row). Odd rows shift half a width left; rows grow upward.
func (l Layout) Position(g Geometry, col, row int) (x, y float64) {
	cx, cy, ox, oy := l.Origin(g)
	h := Hex{Q: col, R: row}
	x = cx - ox + g.Width*(float64(col)-h.RowShift())
	y = cy + oy - 0.75*g.Height*float64(row)
	return
}
