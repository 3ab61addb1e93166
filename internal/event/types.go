// internal/event/types.go
package event

const (
	CellHovered EventType = "CellHovered" // Курсор над новым гексом, Data: hexmap.Cell
	CellLeft    EventType = "CellLeft"    // Курсор ушёл с карты
)
