// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-hexmap-atlas/internal/assets"
	"go-hexmap-atlas/pkg/render"
)

// State — интерфейс для всех состояний окна
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	log.Printf("Viewer state: %T -> %T", sm.current, newState)
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Load switches to the state matching a freshly loaded map: the map itself,
// a notice for an empty map, or the load error.
func (sm *StateMachine) Load(scene render.Scene, err error, fonts *assets.FontManager) {
	sm.SetState(ForScene(scene, err, fonts))
}

// ForScene picks the state that shows the result of loading a map.
func ForScene(scene render.Scene, err error, fonts *assets.FontManager) State {
	switch {
	case err != nil:
		return NewMessageState("Failed to load map", err.Error(), fonts)
	case scene.Empty():
		return NewMessageState("Map is empty", "the data file has no cells; press R to reload", fonts)
	default:
		return NewMapState(scene, fonts)
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
