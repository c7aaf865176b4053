package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/samber/oops"

	"blackout/pkg/engine/input"
	"blackout/pkg/engine/terminal"
	"blackout/pkg/game/config"
	"blackout/pkg/game/devtools"
	"blackout/pkg/game/gameplay"
	"blackout/pkg/game/renderer"
	"blackout/pkg/game/renderer/ebiten"
	"blackout/pkg/game/renderer/headless"
	"blackout/pkg/game/renderer/tui"
	"blackout/pkg/game/scene"
)

type options struct {
	configPath string
	scenePath  string
	frontend   string
	scriptPath string
	dumpPath   string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "blackout.yaml", "preferences file (missing is fine)")
	flag.StringVar(&opts.scenePath, "scene", "", "scene file (default: the built-in scene)")
	flag.StringVar(&opts.frontend, "frontend", "", "tui, window or headless (overrides preferences)")
	flag.StringVar(&opts.scriptPath, "script", "", "headless: read key codes from this file")
	flag.StringVar(&opts.dumpPath, "dump", "", "write a map dump of the scene to this file and exit")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "blackout: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.frontend != "" {
		cfg.Frontend = opts.frontend
	}
	if opts.scenePath != "" {
		cfg.Scene = opts.scenePath
	}
	if err := config.Apply(cfg); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := loadScene(cfg.Scene)
	if err != nil {
		return err
	}
	g, err := scene.Build(s)
	if err != nil {
		return err
	}

	if opts.dumpPath != "" {
		path, err := devtools.DumpMapToFile(g, opts.dumpPath)
		if err != nil {
			return oops.In("dump").With("path", opts.dumpPath).Wrap(err)
		}
		fmt.Println("Map dumped to", path)
		return nil
	}

	frontend, cleanup, err := newFrontend(cfg, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Printf("starting %q with the %s frontend", s.Name, cfg.Frontend)
	return frontend.Run(gameplay.NewLoop(g))
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.LoadFile(path)
}

// setupLogging sends the standard logger to the configured file. The
// terminal frontend owns the screen, so without a file its logs are dropped.
func setupLogging(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		if cfg.Frontend == config.FrontendTUI {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, oops.In("logging").With("path", cfg.LogFile).Wrapf(err, "opening log file")
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func newFrontend(cfg config.Config, opts options) (renderer.Frontend, func(), error) {
	noop := func() {}
	switch cfg.Frontend {
	case config.FrontendWindow:
		return ebiten.New(), noop, nil

	case config.FrontendHeadless:
		if opts.scriptPath != "" {
			f, err := os.Open(opts.scriptPath)
			if err != nil {
				return nil, nil, oops.In("script").With("path", opts.scriptPath).Wrapf(err, "opening script")
			}
			return headless.NewScript(f, os.Stdout, cfg.TickInterval()), func() { f.Close() }, nil
		}
		if terminal.IsInteractive() {
			keys, err := input.NewKeyReader(os.Stdin)
			if err != nil {
				return nil, nil, err
			}
			return headless.NewInteractive(keys, os.Stdout, cfg.TickInterval()), noop, nil
		}
		return headless.NewScript(os.Stdin, os.Stdout, cfg.TickInterval()), noop, nil

	case config.FrontendTUI:
		screen, err := tui.NewScreen()
		if err != nil {
			return nil, nil, oops.In("tui").Wrapf(err, "opening terminal screen")
		}
		return tui.New(screen, cfg.TickInterval()), screen.Fini, nil

	default:
		return nil, nil, oops.In("frontend").Errorf("unknown frontend %q", cfg.Frontend)
	}
}
