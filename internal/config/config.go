package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ingyamilmolinar/quadrants/core/engine"
	"github.com/ingyamilmolinar/quadrants/core/sequence"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

type Config struct {
	Title        string  `toml:"title"`
	Width        int     `toml:"width"`         // canvas px (default 640)
	Height       int     `toml:"height"`        // canvas px (default 480)
	VertexRadius float64 `toml:"vertex_radius"` // default 20
	LayoutRadius float64 `toml:"layout_radius"` // circle the puzzle is laid out on (default 80)
	CornerSize   float64 `toml:"corner_size"`   // side of each corner's drop area (default 130)
	LogLevel     string  `toml:"log_level"`     // DEBUG, INFO, ERROR, NONE (default INFO)
	Puzzles      string  `toml:"puzzles"`       // optional puzzle set file; empty = built in

	Animation Animation `toml:"animation"`
}

type Animation struct {
	ShutterRows   int     `toml:"shutter_rows"`
	SlideSpeed    float64 `toml:"slide_speed"`
	CaptionStart  float64 `toml:"caption_start"`
	CaptionMax    float64 `toml:"caption_max"`
	CaptionGrowth float64 `toml:"caption_growth"`
	SwipeBands    int     `toml:"swipe_bands"`
	SwipeSpeed    float64 `toml:"swipe_speed"`
	SwipeLength   float64 `toml:"swipe_length"`
}

func Default() *Config {
	t := sequence.DefaultTuning()
	return &Config{
		Title:        "Quadrants",
		Width:        640,
		Height:       480,
		VertexRadius: 20,
		LayoutRadius: 80,
		CornerSize:   130,
		LogLevel:     "INFO",
		Animation: Animation{
			ShutterRows:   t.ShutterRows,
			SlideSpeed:    t.SlideSpeed,
			CaptionStart:  t.CaptionStart,
			CaptionMax:    t.CaptionMax,
			CaptionGrowth: t.CaptionGrowth,
			SwipeBands:    t.SwipeBands,
			SwipeSpeed:    t.SwipeSpeed,
			SwipeLength:   t.SwipeLength,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, c)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("config %s: unknown key %q", path, keys[0].String())
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: canvas %dx%d must be positive", c.Width, c.Height)
	case c.VertexRadius <= 0:
		return fmt.Errorf("config: vertex_radius must be > 0, got %v", c.VertexRadius)
	case c.LayoutRadius < 0:
		return fmt.Errorf("config: layout_radius must be >= 0, got %v", c.LayoutRadius)
	case c.CornerSize <= 0:
		return fmt.Errorf("config: corner_size must be > 0, got %v", c.CornerSize)
	}
	if _, err := game_log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Tuning().Validate(); err != nil {
		return fmt.Errorf("config: animation: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Validate has already vetted it.
func (c *Config) Level() game_log.Level {
	l, _ := game_log.ParseLevel(c.LogLevel)
	return l
}

func (c *Config) Canvas() utils.Size {
	return utils.Size{W: float64(c.Width), H: float64(c.Height)}
}

func (c *Config) Tuning() sequence.Tuning {
	a := c.Animation
	return sequence.Tuning{
		ShutterRows:   a.ShutterRows,
		SlideSpeed:    a.SlideSpeed,
		CaptionStart:  a.CaptionStart,
		CaptionMax:    a.CaptionMax,
		CaptionGrowth: a.CaptionGrowth,
		SwipeBands:    a.SwipeBands,
		SwipeSpeed:    a.SwipeSpeed,
		SwipeLength:   a.SwipeLength,
	}
}

// Engine is the geometry and tuning snapshot handed to the core.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Canvas:       c.Canvas(),
		VertexRadius: c.VertexRadius,
		LayoutRadius: c.LayoutRadius,
		CornerSize:   c.CornerSize,
		Tuning:       c.Tuning(),
	}
}
