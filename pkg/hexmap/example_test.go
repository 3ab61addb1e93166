package hexmap_test

import (
	"fmt"

	"go-hexmap-atlas/pkg/hexmap"
)

func ExampleComputeLayout() {
	cells := hexmap.NewCollection([]hexmap.Cell{
		{Hex: hexmap.Hex{Q: 0, R: 0}, Name: "Backlog", Color: "#3b82f6"},
		{Hex: hexmap.Hex{Q: 1, R: 0}, Name: "Doing", Color: "#f59e0b"},
		{Hex: hexmap.Hex{Q: 0, R: 1}, Name: "Done", Color: "#10b981"},
	})
	l := hexmap.ComputeLayout(cells, hexmap.NewGeometry(10))
	fmt.Println(l.Columns, l.Rows, l.MinQ, l.MinR, l.MinQEvenRow)
	// Output: 2 2 0 0 true
}
