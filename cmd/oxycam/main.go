// Package main provides the CLI entry point for the oxy-cam demo.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-cam/engine"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
	"github.com/Carmen-Shannon/oxy-cam/internal/config"
	"github.com/Carmen-Shannon/oxy-cam/internal/logging"
)

// Version information (set at build time)
var version = "dev"

type rootFlags struct {
	configPath string
	logLevel   string
	profile    bool
	watch      bool
}

func newRootCmd() (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "oxycam",
		Short: "Fly-around camera demo",
		Long: `oxycam opens a window, clears it every frame and uploads a camera
view-projection matrix that W/A/S/D (or the configured bindings) move.

Configuration is read from ./oxycam.yaml or --config, with OXYCAM_* environment
overrides. Escape closes the window.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "override log.level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.profile, "profile", false, "log frame statistics once per second")
	cmd.Flags().BoolVar(&flags.watch, "watch", true, "reload speed and projection when the config file changes")
	return cmd, flags
}

func main() {
	cmd, _ := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oxycam:", err)
		os.Exit(1)
	}
}

func run(flags *rootFlags) error {
	cfg, v, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	camOpts, err := cfg.CameraOptions()
	if err != nil {
		return err
	}
	ctrlOpts, err := cfg.ControllerOptions()
	if err != nil {
		return err
	}

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	rend, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win, cfg.RendererOptions()...)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(rend),
		engine.WithCamera(camera.NewCamera(camOpts...)),
		engine.WithController(camera.NewCameraController(ctrlOpts...)),
		engine.WithLogger(logger),
		engine.WithProfiling(flags.profile),
	)

	if flags.watch && v.ConfigFileUsed() != "" {
		watchLogger := logging.Component(logger, "config")
		config.Watch(v, func(event fsnotify.Event, next *config.Config, err error) {
			if err != nil {
				watchLogger.Error().Err(err).Str("file", event.Name).Msg("config reload rejected")
				return
			}
			if !eng.Post(func() { applyLive(eng, next, watchLogger) }) {
				watchLogger.Warn().Str("file", event.Name).Msg("config reload dropped, update queue full")
			}
		})
		watchLogger.Info().Str("file", v.ConfigFileUsed()).Msg("watching config")
	}

	return eng.Run()
}

// applyLive pushes the settings that can change without rebuilding the window
// or the GPU device. It runs on the frame loop.
func applyLive(eng engine.Engine, cfg *config.Config, logger zerolog.Logger) {
	eng.Controller().SetSpeed(cfg.Controller.Speed)
	if bindings, err := cfg.Controller.ResolveBindings(); err == nil {
		eng.Controller().SetBindings(bindings)
	}

	cam := eng.Camera()
	cam.SetFovy(mgl32.DegToRad(cfg.Camera.FovyDegrees))
	cam.SetNear(cfg.Camera.Near)
	cam.SetFar(cfg.Camera.Far)
	if cs, err := camera.ParseClipSpace(cfg.Camera.ClipSpace); err == nil {
		cam.SetClipCorrection(cs.Matrix())
	}

	if r := eng.Renderer(); r != nil {
		if mode, ok := renderer.ParsePresentMode(strings.ToLower(cfg.Renderer.PresentMode)); ok {
			r.SetPresentMode(mode)
		}
	}

	logger.Info().
		Float32("speed", cfg.Controller.Speed).
		Float32("fovy_degrees", cfg.Camera.FovyDegrees).
		Float32("near", cfg.Camera.Near).
		Float32("far", cfg.Camera.Far).
		Str("clip_space", cfg.Camera.ClipSpace).
		Msg("config applied")
}
