// cmd/map_viewer/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-hexmap-atlas/internal/assets"
	"go-hexmap-atlas/internal/config"
	"go-hexmap-atlas/internal/defs"
	"go-hexmap-atlas/internal/state"
	"go-hexmap-atlas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxDeltaTime = 0.06

type AppGame struct {
	cfg            config.Config
	fonts          *assets.FontManager
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// load reads the map file again and switches to the matching state.
func (a *AppGame) load() {
	cells, err := defs.LoadMap(a.cfg.Data)
	var scene render.Scene
	if err == nil {
		scene = render.RenderGrid(cells, a.cfg.RenderOptions())
	}
	a.stateMachine.Load(scene, err, a.fonts)
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.load()
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	dataPath := flag.String("in", "", "map data file (.json, .yaml); overrides config")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dataPath != "" {
		cfg.Data = *dataPath
	}

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatal(err)
	}
	defer fonts.Close()

	app := &AppGame{
		cfg:            cfg,
		fonts:          fonts,
		stateMachine:   state.NewStateMachine(), // Создаём машину состояний
		lastUpdateTime: time.Now(),
	}
	app.load()
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title + " | " + cfg.Heading)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
