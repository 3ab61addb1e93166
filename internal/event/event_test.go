package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	got  *[]string
}

func (r recorder) OnEvent(e Event) {
	s := r.name + ":" + string(e.Type)
	if d, ok := e.Data.(string); ok {
		s += ":" + d
	}
	*r.got = append(*r.got, s)
}

func TestDispatcher_Order(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(CellHovered, recorder{"first", &got})
	d.Subscribe(CellHovered, recorder{"second", &got})
	d.Subscribe(CellLeft, recorder{"panel", &got})

	d.Dispatch(Event{Type: CellHovered, Data: "A"})
	assert.Equal(t, []string{"first:CellHovered:A", "second:CellHovered:A"}, got)

	d.Dispatch(Event{Type: CellLeft})
	assert.Equal(t, []string{"first:CellHovered:A", "second:CellHovered:A", "panel:CellLeft"}, got)
}

func TestDispatcher_NoListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: "Unknown"}) })
}
