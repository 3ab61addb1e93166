// pkg/hexmap/hex.go
package hexmap

import (
	"strconv"

	"go-hexmap-atlas/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R).
// Rows alternate by half a hex width, so R parity matters for placement.
type Hex struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// String returns "q,r".
func (h Hex) String() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)
}

// EvenRow reports whether the hex sits on an even row. Negative rows follow
// the same parity as their absolute value.
func (h Hex) EvenRow() bool {
	return h.R%2 == 0
}

// RowShift is the horizontal shift, in hex widths, applied to the row: 0 for
// even rows and 0.5 for odd ones.
func (h Hex) RowShift() float64 {
	return 0.5 * float64(utils.Abs(h.R%2))
}
