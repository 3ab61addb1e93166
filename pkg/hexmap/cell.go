// pkg/hexmap/cell.go
package hexmap

import "fmt"

// Cell is one labeled hex of the map.
type Cell struct {
	Hex         `yaml:",inline"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color" yaml:"color"`
}

// Collection is an ordered, read-only set of cells. The (q, r) index keeps
// the first cell seen for each coordinate, the same answer a linear
// find-first scan over the input would give.
type Collection struct {
	cells      []Cell
	index      map[Hex]int
	duplicates []Hex
}

// NewCollection copies cells into a new collection.
func NewCollection(cells []Cell) *Collection {
	c := &Collection{
		cells: make([]Cell, len(cells)),
		index: make(map[Hex]int, len(cells)),
	}
	copy(c.cells, cells)

	for i, cell := range c.cells {
		if _, exists := c.index[cell.Hex]; exists {
			c.duplicates = append(c.duplicates, cell.Hex)
			continue
		}
		c.index[cell.Hex] = i
	}
	return c
}

// Len returns the number of cells, duplicates included.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.cells)
}

// At returns the i-th cell in input order.
func (c *Collection) At(i int) Cell {
	return c.cells[i]
}

// Cells returns a copy of the cells in input order.
func (c *Collection) Cells() []Cell {
	if c == nil {
		return nil
	}
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Lookup finds the cell at h.
func (c *Collection) Lookup(h Hex) (Cell, bool) {
	if c == nil {
		return Cell{}, false
	}
	i, ok := c.index[h]
	if !ok {
		return Cell{}, false
	}
	return c.cells[i], true
}

// Duplicates lists every coordinate that appeared again after its first
// occurrence, in input order. Those later cells are never rendered.
func (c *Collection) Duplicates() []Hex {
	if c == nil || len(c.duplicates) == 0 {
		return nil
	}
	out := make([]Hex, len(c.duplicates))
	copy(out, c.duplicates)
	return out
}

// MaxSpan is the largest number of columns or rows a collection may cover.
// The grid is scanned slot by slot, so wider maps are refused rather than
// drawn; it also keeps column and row counts far from int overflow.
const MaxSpan = 4096

// Validate checks that the cells fit in a MaxSpan × MaxSpan rectangle.
func (c *Collection) Validate() error {
	if c.Len() == 0 {
		return nil
	}
	minQ, maxQ := c.cells[0].Q, c.cells[0].Q
	minR, maxR := c.cells[0].R, c.cells[0].R
	for _, cell := range c.cells[1:] {
		minQ, maxQ = min(minQ, cell.Q), max(maxQ, cell.Q)
		minR, maxR = min(minR, cell.R), max(maxR, cell.R)
	}
	// unsigned difference of max >= min cannot wrap
	if cols := uint64(maxQ) - uint64(minQ); cols >= MaxSpan {
		return fmt.Errorf("%w: q from %d to %d", ErrSpanTooLarge, minQ, maxQ)
	}
	if rows := uint64(maxR) - uint64(minR); rows >= MaxSpan {
		return fmt.Errorf("%w: r from %d to %d", ErrSpanTooLarge, minR, maxR)
	}
	return nil
}
