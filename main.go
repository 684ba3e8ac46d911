package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/falling-dna/internal/config"
	"github.com/iburimskiy/falling-dna/internal/game"
)

const (
	backendWindow   = "window"
	backendTerminal = "terminal"
)

func main() {
	var (
		configPath string
		backend    string
		seed       int64
		dump       bool
	)
	flag.StringVar(&configPath, "config", "", "YAML config file (defaults apply to missing keys)")
	flag.StringVar(&backend, "backend", backendWindow, "render target: window or terminal")
	flag.Int64Var(&seed, "seed", 0, "random seed, 0 seeds from the clock")
	flag.BoolVar(&dump, "dump-config", false, "print the effective config as YAML and exit")
	flag.Parse()

	cfg, err := loadConfig(configPath, seed)
	if err != nil {
		fatal(backend, err)
	}

	if dump {
		out, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("[main] %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	switch backend {
	case backendWindow:
		err = game.RunWindow(cfg)
	case backendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = game.RunTerminal(ctx, cfg)
		stop()
	default:
		err = fmt.Errorf("unknown backend %q", backend)
	}
	if err != nil {
		fatal(backend, err)
	}
}

func loadConfig(path string, seed int64) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}

// fatal refuses to start. In window mode there may be no console, so the
// error is also shown in a dialog.
func fatal(backend string, err error) {
	if backend == backendWindow {
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
			log.Printf("[main] Warning: failed to show error dialog: %v", derr)
		}
	}
	log.Fatalf("[main] %v", err)
}
