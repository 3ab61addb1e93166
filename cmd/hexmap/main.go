// cmd/hexmap/main.go
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go-hexmap-atlas/internal/config"
	"go-hexmap-atlas/internal/defs"
	"go-hexmap-atlas/internal/page"
	"go-hexmap-atlas/internal/server"
	"go-hexmap-atlas/pkg/render"
	"go-hexmap-atlas/pkg/render/raster"
	"go-hexmap-atlas/pkg/render/svg"
)

const usage = `usage: hexmap <command> [flags]

commands:
  render   draw the map to an SVG, PNG or HTML file
  serve    serve the map page over HTTP
`

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// commonFlags registers the flags shared by every command.
func commonFlags(fs *flag.FlagSet) (configPath, dataPath *string, empty *bool) {
	configPath = fs.String("config", "", "YAML config file")
	dataPath = fs.String("in", "", "map data file (.json, .yaml); overrides config")
	empty = fs.Bool("empty", false, "draw placeholder hexagons for empty coordinates")
	return
}

func loadConfig(configPath, dataPath string, empty bool) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dataPath != "" {
		cfg.Data = dataPath
	}
	if empty {
		cfg.DrawEmptyCells = true
	}
	return cfg, nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath, dataPath, empty := commonFlags(fs)
	format := fs.String("format", "", "svg, png or html; guessed from -out when empty")
	out := fs.String("out", "-", "output file, - for stdout")
	scale := fs.Float64("scale", 1, "PNG scale factor")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath, *dataPath, *empty)
	if err != nil {
		return err
	}
	cells, err := defs.LoadMap(cfg.Data)
	if err != nil {
		return err
	}
	scene := render.RenderGrid(cells, cfg.RenderOptions())

	f := *format
	if f == "" {
		f = strings.TrimPrefix(filepath.Ext(*out), ".")
	}

	var buf bytes.Buffer
	switch strings.ToLower(f) {
	case "svg", "":
		err = svg.Encode(&buf, scene, svg.DefaultOptions())
	case "png":
		opts := raster.DefaultOptions()
		opts.Scale = *scale
		err = raster.EncodePNG(&buf, scene, opts)
	case "html", "htm":
		err = page.Render(&buf, page.Page{Title: cfg.Title, Heading: cfg.Heading, Scene: scene})
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(*out, buf.Bytes()); err != nil {
		return err
	}
	if *out != "-" {
		log.Printf("Rendered %d hexagons to %s", len(scene.Items), *out)
	}
	return nil
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath, dataPath, empty := commonFlags(fs)
	addr := fs.String("addr", "", "HTTP listen address; overrides config")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath, *dataPath, *empty)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	cells, err := defs.LoadMap(cfg.Data)
	if err != nil {
		return err
	}
	srv, err := server.New(cfg, cells)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, cfg.ListenAddr)
}
