// game is a short interactive cooking cartoon: an intro, a rhythm round of
// dragging ingredients onto a cutting board, a closing animation and an
// outro, played in a loop.
//
// Usage:
//
//	game [flags]
//
// Flags:
//
//	--config <file>  - Load settings from a YAML file instead of the built-in ones
//	--assets <dir>   - Directory holding images/ and sounds/ (default: .)
//	--mute           - Run without audio
//	--scale <n>      - Window scale factor (default: from config)
//	--seed <value>   - RNG seed (0 = random based on time)
//	--debug          - Verbose logging
//	--record <file>  - Record input to file
//	--replay <file>  - Play back a recorded session
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/cook/internal/application/game"
	"github.com/younwookim/cook/internal/application/replay"
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/scene/cooking"
	"github.com/younwookim/cook/internal/application/scene/cutscene"
	"github.com/younwookim/cook/internal/application/state"
	"github.com/younwookim/cook/internal/application/system"
	"github.com/younwookim/cook/internal/infrastructure/config"
	"github.com/younwookim/cook/internal/infrastructure/media"
)

var (
	flagConfig string
	flagAssets string
	flagMute   bool
	flagScale  int
	flagSeed   int64
	flagDebug  bool
	flagRecord string
	flagReplay string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "game",
	Short:         "Cook - a rhythm cooking cartoon",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(flagDebug)
		if err := run(logger); err != nil {
			logger.Error("game stopped", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file (default: built-in)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", ".", "Directory holding images/ and sounds/")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale factor (0 = from config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	rootCmd.Flags().StringVar(&flagReplay, "replay", "", "Play back a recorded session")
	rootCmd.MarkFlagsMutuallyExclusive("record", "replay")
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cook",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads path, or the embedded game.yaml when path is empty.
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.NewLoader(filepath.Dir(path)).LoadFile(filepath.Base(path))
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load()
}

// factories wires the scene cycle Intro -> Cooking -> Transition -> Outro.
func factories() game.Factories {
	return game.Factories{
		state.SceneIntro:      cutscene.NewIntro,
		state.SceneCooking:    cooking.New,
		state.SceneTransition: cutscene.NewTransition,
		state.SceneOutro:      cutscene.NewOutro,
	}
}

func run(logger *log.Logger) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagScale > 0 {
		cfg.Display.Scale = flagScale
	}

	var replayer *replay.Replayer
	seed := flagSeed
	if flagReplay != "" {
		data, err := replay.LoadReplay(flagReplay)
		if err != nil {
			return err
		}
		replayer = replay.NewReplayer(*data)
		seed = replayer.Seed()
		logger.Info("replaying", "file", flagReplay, "ticks", replayer.TotalTicks(), "seed", seed)
	} else if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var audioCtx *audio.Context
	if cfg.Audio.Enabled && !flagMute {
		audioCtx = audio.NewContext(cfg.Audio.SampleRate)
	}

	assets := os.DirFS(flagAssets)
	mixer := media.NewMixer(audioCtx, assets, logger)
	if !mixer.Enabled() {
		logger.Info("audio disabled")
	}

	ctx := &scene.Context{
		Assets: media.NewLibrary(assets, logger),
		Audio:  mixer,
		Cursor: media.SystemCursor{},
		Rand:   rand.New(rand.NewSource(seed)),
		Log:    logger,
		Config: cfg,
	}

	var (
		clock game.Clock = game.NewSystemClock()
		input game.Input = system.NewInputSystem()
	)
	if replayer != nil {
		clock, input = replayer, replayer
		ctx.Audio = replayer.Audio(mixer)
	}

	g, err := game.New(ctx, factories(), state.SceneIntro, clock, input)
	if err != nil {
		return err
	}
	defer g.Close()

	var recorder *replay.Recorder
	if flagRecord != "" {
		recorder = replay.NewRecorder(seed)
		g.SetRecorder(recorder)
		logger.Info("recording enabled", "file", flagRecord, "seed", seed)
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Display.Framerate)

	err = ebiten.RunGame(g)
	if replayer != nil {
		logger.Info("replay finished", "played", replayer.CurrentTick(), "ticks", replayer.TotalTicks())
	}
	if recorder != nil {
		saveRecording(logger, recorder, flagRecord)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func saveRecording(logger *log.Logger, recorder *replay.Recorder, filename string) {
	recorder.Stop()
	if err := recorder.Save(filename); err != nil {
		logger.Error("failed to save recording", "error", err)
		return
	}
	logger.Info("recording saved", "file", filename, "ticks", recorder.TickCount())
}
