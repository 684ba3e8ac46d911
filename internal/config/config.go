package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	MinFontSize = 1
	MaxFontSize = 70

	MinSeqLen = 25
	MaxSeqLen = 150

	NumSeqs = 100

	// Fraction of sequences drawn in reference case (0.0 - 1.0)
	FracUppercase = 0.5

	// Pixels per tick
	MinSpeed = 1.0
	MaxSpeed = 20.0

	// Depth range used to simulate distance
	DepthMin = 1.0
	DepthMax = 10.0

	// New sequences start up to this many pixels above the top edge
	SpawnBand = 100.0

	FontFamily = "mono"

	WindowTitle = "Falling DNA"

	TerminalCellWidth  = 8
	TerminalCellHeight = 16
	TerminalFPS        = 30
)

var (
	FontColor       = MustParseColor("#00ff00")
	BackgroundColor = MustParseColor("#000000")
)

// Config holds every tunable of the animation. It is built once at startup
// and passed by value; nothing mutates it afterwards.
type Config struct {
	MinFontSize int `yaml:"minFontSize"`
	MaxFontSize int `yaml:"maxFontSize"`

	MinSeqLen int `yaml:"minSeqLen"`
	MaxSeqLen int `yaml:"maxSeqLen"`

	NumSeqs       int     `yaml:"numSeqs"`
	FracUppercase float64 `yaml:"fracUppercase"`

	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`

	DepthMin  float64 `yaml:"depthMin"`
	DepthMax  float64 `yaml:"depthMax"`
	SpawnBand float64 `yaml:"spawnBand"`

	FontColor       Color  `yaml:"fontColor"`
	BackgroundColor Color  `yaml:"backgroundColor"`
	FontFamily      string `yaml:"fontFamily"`

	// Seed for the particle generator; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	// Reference is the source text every sequence is sampled from.
	Reference string `yaml:"reference"`

	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// WindowConfig sizes the ebiten window. Zero width or height means the
// current monitor size.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`
}

// TerminalConfig maps terminal cells onto the pixel space the sequences
// live in.
type TerminalConfig struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
	FPS        int `yaml:"fps"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		MinFontSize:     MinFontSize,
		MaxFontSize:     MaxFontSize,
		MinSeqLen:       MinSeqLen,
		MaxSeqLen:       MaxSeqLen,
		NumSeqs:         NumSeqs,
		FracUppercase:   FracUppercase,
		MinSpeed:        MinSpeed,
		MaxSpeed:        MaxSpeed,
		DepthMin:        DepthMin,
		DepthMax:        DepthMax,
		SpawnBand:       SpawnBand,
		FontColor:       FontColor,
		BackgroundColor: BackgroundColor,
		FontFamily:      FontFamily,
		Reference:       Cas9,
		Window: WindowConfig{
			Title: WindowTitle,
		},
		Terminal: TerminalConfig{
			CellWidth:  TerminalCellWidth,
			CellHeight: TerminalCellHeight,
			FPS:        TerminalFPS,
		},
	}
}

// Load reads a YAML file on top of Default, so a file only needs the keys
// it changes. Unknown keys are rejected.
//
// Returns an error when the file cannot be read or parsed, or when the
// resulting configuration fails Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the startup preconditions. Out-of-range values are
// rejected, never clamped.
func (c Config) Validate() error {
	if c.MinFontSize < 1 {
		return fmt.Errorf("minFontSize must be at least 1, got %d", c.MinFontSize)
	}
	if c.MinFontSize > c.MaxFontSize {
		return fmt.Errorf("font size range invalid: min(%d) > max(%d)", c.MinFontSize, c.MaxFontSize)
	}

	if c.MinSeqLen < 1 {
		return fmt.Errorf("minSeqLen must be at least 1, got %d", c.MinSeqLen)
	}
	if c.MinSeqLen > c.MaxSeqLen {
		return fmt.Errorf("sequence length range invalid: min(%d) > max(%d)", c.MinSeqLen, c.MaxSeqLen)
	}
	if n := utf8.RuneCountInString(c.Reference); n < c.MaxSeqLen {
		return fmt.Errorf("reference has %d characters, need at least maxSeqLen(%d)", n, c.MaxSeqLen)
	}

	if c.NumSeqs < 1 {
		return fmt.Errorf("numSeqs must be at least 1, got %d", c.NumSeqs)
	}
	if c.FracUppercase < 0 || c.FracUppercase > 1 {
		return fmt.Errorf("fracUppercase must be within [0, 1], got %.2f", c.FracUppercase)
	}

	if c.MinSpeed <= 0 {
		return fmt.Errorf("minSpeed must be positive, got %.2f", c.MinSpeed)
	}
	if c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("speed range invalid: min(%.2f) > max(%.2f)", c.MinSpeed, c.MaxSpeed)
	}

	// Depth below 1 would push font size and speed past their maxima.
	if c.DepthMin < 1 {
		return fmt.Errorf("depthMin must be at least 1, got %.2f", c.DepthMin)
	}
	if c.DepthMin > c.DepthMax {
		return fmt.Errorf("depth range invalid: min(%.2f) > max(%.2f)", c.DepthMin, c.DepthMax)
	}
	if c.SpawnBand < 0 {
		return fmt.Errorf("spawnBand must not be negative, got %.2f", c.SpawnBand)
	}

	if c.FontFamily == "" {
		return fmt.Errorf("fontFamily must not be empty")
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size invalid: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Terminal.CellWidth < 1 || c.Terminal.CellHeight < 1 {
		return fmt.Errorf("terminal cell size invalid: %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.FPS < 1 {
		return fmt.Errorf("terminal fps must be at least 1, got %d", c.Terminal.FPS)
	}

	return nil
}
