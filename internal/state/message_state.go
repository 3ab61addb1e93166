// internal/state/message_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-hexmap-atlas/internal/assets"
	"go-hexmap-atlas/internal/config"
)

// MessageState fills the window with a centered notice instead of a map.
type MessageState struct {
	Title     string
	Text      string
	titleFace font.Face
	textFace  font.Face
}

func NewMessageState(title, msg string, fonts *assets.FontManager) *MessageState {
	return &MessageState{
		Title:     title,
		Text:      msg,
		titleFace: fonts.Face(config.TitleFontSize),
		textFace:  fonts.Face(config.TextFontSize),
	}
}

func (m *MessageState) Enter() {
	log.Printf("Viewer: %s: %s", m.Title, m.Text)
}

func (m *MessageState) Update(deltaTime float64) {}

func (m *MessageState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cy := config.ScreenHeight / 2
	drawCentered(screen, m.titleFace, m.Title, cy-config.TitleFontSize)
	drawCentered(screen, m.textFace, m.Text, cy+config.TextFontSize)
}

func (m *MessageState) Exit() {}

func drawCentered(screen *ebiten.Image, face font.Face, s string, y int) {
	if face == nil || s == "" {
		return
	}
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-b.Dx())/2, y, config.TextLightColor)
}
