package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/config"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/status"
	"github.com/lixenwraith/blockfall/terminal"
)

// gameOverDrain bounds how long the final cue may hold the exit
const gameOverDrain = 1500 * time.Millisecond

// options holds the command-line flags
type options struct {
	configPath  string
	debug       bool
	seed        int64
	metricsAddr string
	mute        bool
}

// gameScreen is the device the engine plays on
type gameScreen interface {
	engine.InputSource
	engine.Renderer
	Init() error
	Fini()
	PollLoop()
}

// newScreen opens the process terminal; replaced in tests
var newScreen = func() (gameScreen, error) {
	s, err := terminal.New()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newFlagSet binds the command-line flags to opts
func newFlagSet(opts *options, errorHandling flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet("blockfall", errorHandling)
	fs.StringVar(&opts.configPath, "config", "", "Path to YAML config (default $BLOCKFALL_CONFIG)")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.Int64Var(&opts.seed, "seed", 0, "Shape generator seed, 0 for random")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve prometheus metrics on host:port")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound")
	return fs
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts := &options{}
	fs := newFlagSet(opts, flag.ExitOnError)
	fs.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	code := run(ctx, opts, fs, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run plays one game and returns the process exit code.
// Cancelling ctx ends the game like a top-out: the line count is printed and 0 returned.
func run(ctx context.Context, opts *options, fs *flag.FlagSet, stdout, stderr io.Writer) int {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	applyFlags(cfg, opts, fs)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	runID := uuid.NewString()
	log.SetPrefix("[" + runID[:8] + "] ")

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("run %s: seed=%d board=%dx%d", runID, seed, cfg.Game.Width, cfg.Game.Height)

	eng, err := engine.New(cfg.EngineConfig(), board.NewRandomSource(seed), nil)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create engine: %v\n", err)
		return 1
	}

	metrics := status.NewRegistry(runID)
	metrics.SetFallInterval(eng.FallInterval())
	eng.AddObserver(metrics)

	if cfg.Metrics.Addr != "" {
		srv, err := status.Listen(cfg.Metrics.Addr, metrics)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start metrics: %v\n", err)
			return 1
		}
		serveCtx, cancelServe := context.WithCancel(ctx)
		defer cancelServe()
		core.Go(func() {
			if err := srv.Serve(serveCtx); err != nil {
				log.Printf("metrics: %v", err)
			}
		})
		log.Printf("metrics on %s", srv.Addr())
	}

	var sounds *audio.SoundManager
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.AudioConfig())
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			sounds = sm
			defer sm.Cleanup()
			eng.AddObserver(sm)
		}
	}

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.RegisterTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.Go(screen.PollLoop)

	res, runErr := eng.Run(ctx, screen, screen)

	if sounds != nil && res.Reason == engine.ReasonToppedOut {
		sounds.Drain(gameOverDrain)
	}

	// Restore the terminal before anything reaches stdout
	screen.Fini()
	core.RegisterTerminal(nil)

	if runErr != nil {
		fmt.Fprintf(stderr, "Game stopped: %v\n", runErr)
		return 1
	}

	log.Printf("run %s finished: reason=%s lines=%d locked=%d", runID, res.Reason, res.Lines, res.Locked)
	fmt.Fprintf(stdout, "Lines %d\n", res.Lines)
	return 0
}

// applyFlags lets flags explicitly set on fs win over file and environment
func applyFlags(cfg *config.Config, opts *options, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = opts.debug
		case "seed":
			cfg.Game.Seed = opts.seed
		case "metrics-addr":
			cfg.Metrics.Addr = opts.metricsAddr
		case "mute":
			if opts.mute {
				cfg.Audio.Enabled = false
			}
		}
	})
}
