package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/mvaleri/go-holdkit/holdkit/backend/terminal"
	"github.com/mvaleri/go-holdkit/holdkit/clock"
	"github.com/mvaleri/go-holdkit/holdkit/config"
	"github.com/mvaleri/go-holdkit/holdkit/input"
	"github.com/mvaleri/go-holdkit/holdkit/input/event"
	"github.com/mvaleri/go-holdkit/holdkit/trigger"
)

func main() {
	app := cli.NewApp()
	app.Name = "holdkit"
	app.Description = "Hold-to-confirm input trigger demo"
	app.Usage = "holdkit [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a TOML config file",
		},
		cli.DurationFlag{
			Name:  "duration",
			Usage: "Hold duration before the trigger activates",
		},
		cli.IntFlag{
			Name:  "tick-rate",
			Usage: "Frame clock rate in ticks per second",
		},
		cli.StringFlag{
			Name:  "action",
			Usage: "Action the hold trigger watches (e.g. ButtonA)",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "Write debug logs to this file",
		},
	}
	app.Action = runDemo

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running demo", "error", err)
		os.Exit(1)
	}
}

func runDemo(c *cli.Context) error {
	if err := setupLogging(c.String("log")); err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("duration") {
		cfg.HoldDurationMS = int(c.Duration("duration") / time.Millisecond)
	}
	if c.IsSet("tick-rate") {
		cfg.TickRateHz = c.Int("tick-rate")
	}
	if c.IsSet("action") {
		cfg.Action = c.String("action")
	}

	act, err := cfg.ResolveAction()
	if err != nil {
		return err
	}
	keymap, err := cfg.ResolveKeymap()
	if err != nil {
		return err
	}

	mgr := input.NewManager()
	ticker := clock.NewTicker(clock.Interval(cfg.TickRate()))
	defer ticker.Stop()

	hold, err := trigger.NewHold(mgr, ticker, trigger.Config{
		Selector:     input.Select(act),
		HoldDuration: cfg.HoldDuration(),
	})
	if err != nil {
		return err
	}
	defer hold.Destroy()

	backend := terminal.New(mgr, terminal.Config{KeyMap: keymap})
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Cleanup()

	hold.OnActivated(func(args event.Args) {
		backend.Log(fmt.Sprintf("%s activated (held %s)", args.Action, hold.Duration()))
	})
	hold.OnDeactivated(func(args event.Args) {
		backend.Log(fmt.Sprintf("%s released", args.Action))
	})

	backend.Log(fmt.Sprintf("hold %s for %s to activate", act, hold.Duration()))

	for backend.Running() {
		ticker.Pump()
		if err := backend.Update(); err != nil {
			return err
		}
	}
	return nil
}

// setupLogging sends slog output to the given file, or discards it so
// log lines don't fight the tcell screen for the terminal.
func setupLogging(path string) error {
	var w io.Writer = io.Discard
	level := slog.LevelInfo

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}
