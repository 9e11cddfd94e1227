package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	nanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/quadrants/core/engine"
	"github.com/ingyamilmolinar/quadrants/core/levels"
	"github.com/ingyamilmolinar/quadrants/core/model"
	"github.com/ingyamilmolinar/quadrants/internal/config"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
	"github.com/ingyamilmolinar/quadrants/internal/ui"
)

const runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var (
	configPath  string
	logLevel    string
	puzzlesPath string
	demo        bool
)

var rootCmd = &cobra.Command{
	Use:          "quadrants",
	Short:        "Drag every vertex into a colored corner so no edge joins two of the same color",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, defs, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		set, err := levels.New(defs, logger)
		if err != nil {
			return err
		}
		eng, err := engine.New(cfg.Engine(), set, logger)
		if err != nil {
			return err
		}
		g := ui.New(eng, logger)
		if demo {
			g.EnableDemo()
		}

		// Window settings are ignored on WASM, where the canvas comes from index.html.
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(cfg.Title)
		logger.Infof("[MAIN] starting %d puzzles", set.Len())
		if err := ebiten.RunGame(g); err != nil {
			logger.Errorf("[MAIN] %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "DEBUG, INFO, ERROR or NONE; overrides the config file")
	rootCmd.PersistentFlags().StringVar(&puzzlesPath, "puzzles", "", "TOML puzzle set; overrides the config file")
	rootCmd.Flags().BoolVar(&demo, "demo", false, "play the puzzles automatically and exit")
	rootCmd.AddCommand(validateCmd)
}

// setup resolves config, flags and the puzzle set shared by every command.
func setup(cmd *cobra.Command) (*config.Config, []model.Definition, *game_log.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("puzzles") {
		cfg.Puzzles = puzzlesPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	runID, err := nanoid.Generate(runIDAlphabet, 8)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("run id: %w", err)
	}
	logger := game_log.New(cmd.ErrOrStderr(), cfg.Level()).Tagged("run=" + runID)

	defs, err := levels.Load(cfg.Puzzles)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debugf("[MAIN] config=%q puzzles=%q level=%s", configPath, cfg.Puzzles, cfg.Level())
	return cfg, defs, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
