// Package main is the inputkit probe: a small diagnostic tool that loads an
// action set, polls the devices once per frame and reports action values.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/inputkit/internal/config"
	"github.com/Faultbox/inputkit/internal/logger"
	"github.com/Faultbox/inputkit/internal/window"
	"github.com/Faultbox/inputkit/pkg/input"
	"github.com/Faultbox/inputkit/pkg/input/driver/headless"
	"github.com/Faultbox/inputkit/pkg/input/driver/sdldriver"
)

func main() {
	app := cli.NewApp()
	app.Name = "inputprobe"
	app.Usage = "poll input devices and report logical action values"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to the config file",
		},
		cli.StringFlag{
			Name:  "bindings",
			Usage: "Path to the bindings XML file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run a scripted session without a window",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "save-defaults",
			Usage: "Write the default bindings to the bindings path and exit",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runProbe

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "inputprobe: %v\n", err)
		os.Exit(1)
	}
}

func runProbe(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.Bool("debug") {
		cfg.Logging.Level = "debug"
	}
	if path := c.String("bindings"); path != "" {
		cfg.Input.BindingsPath = path
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	if c.Bool("save-defaults") {
		set := input.DefaultBindings(logger.Log)
		if err := set.SaveFile(cfg.Input.BindingsPath); err != nil {
			return err
		}
		logger.Info("default bindings written", zap.String("path", cfg.Input.BindingsPath))
		return nil
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames with a positive value")
		}
		return runHeadless(cfg, frames)
	}

	return runWindowed(cfg)
}

// runHeadless drives the engine with a scripted driver: no window, no real
// hardware, deterministic output.
func runHeadless(cfg *config.Config, frames int) error {
	drv := headless.New()
	sys := input.New(drv,
		input.WithLogger(logger.Log),
		input.WithBindingsPath(cfg.Input.BindingsPath),
	)
	if !sys.LoadBindings() {
		sys.UseBindings(input.DefaultBindings(logger.Log))
		logger.Info("using default bindings")
	}

	drv.SetJoystickConnected(true)
	for frame := 0; frame < frames; frame++ {
		scriptFrame(drv, frame)
		sys.Update()
		logger.Info("frame",
			zap.Int("n", frame),
			zap.String("last_device", sys.LastDevice().String()),
			zap.Float64("horizontal", sys.Value("horizontal")),
			zap.Float64("vertical", sys.Value("vertical")),
			zap.Bool("jump", sys.IsPressed("jump")),
			zap.Bool("jump_pressed", sys.JustPressed("jump")),
			zap.Bool("jump_released", sys.JustReleased("jump")),
		)
	}
	return nil
}

// scriptFrame feeds a canned sequence: tap D, hold Space, sweep the left
// stick. Enough to exercise buttons, edges and axis priority.
func scriptFrame(drv *headless.Driver, frame int) {
	switch frame % 10 {
	case 1:
		drv.SetKey(int(input.KeyD), true)
	case 3:
		drv.SetKey(int(input.KeyD), false)
	case 4:
		drv.SetKey(int(input.KeySpace), true)
	case 7:
		drv.SetKey(int(input.KeySpace), false)
	}
	sweep := float64(frame%10) / 10.0
	drv.SetJoyAxis(int(input.JoyLeftStickX), sweep)
}

// runWindowed opens an SDL window and polls real devices until the window
// closes or the pause action fires.
func runWindowed(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	drv, err := sdldriver.New(logger.Log)
	if err != nil {
		return err
	}
	defer drv.Close()

	sys := input.Shared(drv,
		input.WithLogger(logger.Log),
		input.WithBindingsPath(cfg.Input.BindingsPath),
	)
	if !sys.LoadBindings() {
		sys.UseBindings(input.DefaultBindings(logger.Log))
		logger.Info("using default bindings")
		sys.SaveBindings()
	}

	rate := cfg.Probe.FrameRate
	if rate <= 0 {
		rate = 60
	}
	frameDelay := uint32(1000 / rate)
	frame := 0
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				running = false
			}
			drv.HandleEvent(event)
		}

		sys.Update()

		if sys.JustPressed("pause") {
			logger.Info("pause action fired, quitting")
			running = false
		}

		if cfg.Probe.ReportEvery > 0 && frame%cfg.Probe.ReportEvery == 0 {
			reportActions(sys)
		}

		frame++
		sdl.Delay(frameDelay)
	}

	if cfg.Input.SaveOnExit {
		sys.SaveBindings()
	}
	return nil
}

func reportActions(sys *input.System) {
	fields := []zap.Field{
		zap.String("last_device", sys.LastDevice().String()),
		zap.Bool("joystick", sys.Joystick().Connected()),
	}
	for _, name := range sys.Actions().Names() {
		fields = append(fields, zap.Float64(name, sys.Value(name)))
	}
	logger.Info("actions", fields...)
}
