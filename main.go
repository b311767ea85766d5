package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/kataras/golog"

	"sudokubattle/pkg/engine/assets"
	"sudokubattle/pkg/engine/audio"
	"sudokubattle/pkg/engine/logging"
	"sudokubattle/pkg/engine/terminal"
	"sudokubattle/pkg/game/config"
	"sudokubattle/pkg/game/controls"
	"sudokubattle/pkg/game/host"
	"sudokubattle/pkg/game/i18n"
	"sudokubattle/pkg/game/puzzle"
	"sudokubattle/pkg/game/scenes"
	"sudokubattle/pkg/game/world"
)

type options struct {
	configPath   string
	printBinding bool

	title      string
	width      int
	height     int
	tps        int
	resources  string
	locale     string
	logLevel   string
	logFile    string
	difficulty string
	seed       int64
	mute       bool
}

func parseFlags() *options {
	def := config.Default()
	o := &options{}
	flag.StringVar(&o.configPath, "config", "", "JSON settings file")
	flag.BoolVar(&o.printBinding, "bindings", false, "print the key bindings and exit")
	flag.StringVar(&o.title, "title", def.Title, "window title")
	flag.IntVar(&o.width, "width", def.Width, "window width")
	flag.IntVar(&o.height, "height", def.Height, "window height")
	flag.IntVar(&o.tps, "tps", def.TPS, "updates per second")
	flag.StringVar(&o.resources, "resources", def.ResourceDir, "resource directory")
	flag.StringVar(&o.locale, "locale", def.Locale, "message locale")
	flag.StringVar(&o.logLevel, "log-level", def.LogLevel, "debug, info, warn, error, fatal or disable")
	flag.StringVar(&o.logFile, "log-file", def.LogFile, "log file, empty for stdout only")
	flag.StringVar(&o.difficulty, "difficulty", def.Difficulty, "easy, medium or hard")
	flag.Int64Var(&o.seed, "seed", 0, "puzzle seed, 0 for a random one")
	flag.BoolVar(&o.mute, "mute", false, "disable sound")
	flag.Parse()
	return o
}

// loadConfig reads the settings file, if any, and applies the flags given
// on the command line over it.
func loadConfig(o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.Title = o.title
		case "width":
			cfg.Width = o.width
		case "height":
			cfg.Height = o.height
		case "tps":
			cfg.TPS = o.tps
		case "resources":
			cfg.ResourceDir = o.resources
		case "locale":
			cfg.Locale = o.locale
		case "log-level":
			cfg.LogLevel = o.logLevel
		case "log-file":
			cfg.LogFile = o.logFile
		case "difficulty":
			cfg.Difficulty = o.difficulty
		case "seed":
			cfg.Seed = o.seed
		case "mute":
			cfg.Muted = o.mute
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printBindings(binding *controls.Binding) error {
	styled := terminal.IsTerminal(os.Stdout)
	width := 80
	if styled {
		width = terminal.GetWidth()
	}
	return controls.PrintBindings(os.Stdout, binding, styled, width)
}

func newPlayer(cfg *config.Config) audio.Player {
	if cfg.Muted {
		return audio.Nop{}
	}
	sp, err := audio.NewSpeaker()
	if err != nil {
		golog.Warnf("sound disabled: %v", err)
		return audio.Nop{}
	}
	return sp
}

func run(o *options) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	config.SetCurrent(cfg)

	binding := controls.DefaultBinding()
	if o.printBinding {
		return printBindings(binding)
	}

	logFile, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer logFile.Close()

	i18n.Setup(cfg.ResourceDir, cfg.Locale)

	store, err := assets.Open(cfg.ResourceDir)
	if err != nil {
		return err
	}
	player := newPlayer(cfg)
	defer player.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	w := world.New(cfg, store, player, rng)

	p := puzzle.Generate(rng, cfg.PuzzleDifficulty())
	golog.Infof("generated %s puzzle with seed %d", cfg.PuzzleDifficulty(), seed)
	golog.Debugf("puzzle:\n%s", p.Given.String())

	board, err := scenes.NewGameboardScene(w, p)
	if err != nil {
		return err
	}
	stack := scenes.NewStack(w)
	stack.Push(board)

	return host.Run(host.New(stack, binding))
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
