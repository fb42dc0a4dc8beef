// Package config provides configuration management for oxy-cam
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cam/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. OXYCAM_CONTROLLER_SPEED.
const EnvPrefix = "OXYCAM"

// Config holds all application configuration
type Config struct {
	Camera     CameraConfig     `mapstructure:"camera"`
	Controller ControllerConfig `mapstructure:"controller"`
	Window     WindowConfig     `mapstructure:"window"`
	Renderer   RendererConfig   `mapstructure:"renderer"`
	Log        logging.Config   `mapstructure:"log"`
}

// CameraConfig configures the initial viewpoint and projection
type CameraConfig struct {
	Eye         []float32 `mapstructure:"eye"`
	Target      []float32 `mapstructure:"target"`
	Up          []float32 `mapstructure:"up"`
	FovyDegrees float32   `mapstructure:"fovy_degrees"`
	Near        float32   `mapstructure:"near"`
	Far         float32   `mapstructure:"far"`
	ClipSpace   string    `mapstructure:"clip_space"` // webgpu, opengl, vulkan, metal, d3d
}

// ControllerConfig configures keyboard movement
type ControllerConfig struct {
	Speed    float32           `mapstructure:"speed"`    // world units per tick
	Bindings map[string]string `mapstructure:"bindings"` // key name -> direction
}

// WindowConfig configures the window
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// RendererConfig configures the GPU surface
type RendererConfig struct {
	PresentMode   string    `mapstructure:"present_mode"` // vsync or uncapped
	ClearColor    []float64 `mapstructure:"clear_color"`  // r, g, b, a
	ForceSoftware bool      `mapstructure:"force_software"`
}

// DefaultConfig returns the demo scene: eye (0, 1, 2) looking at the origin, +Y up,
// 45 degree field of view, depth range [0.1, 100] and a speed of 0.2.
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			Eye:         []float32{0, 1, 2},
			Target:      []float32{0, 0, 0},
			Up:          []float32{0, 1, 0},
			FovyDegrees: 45,
			Near:        0.1,
			Far:         100,
			ClipSpace:   camera.ClipSpaceWebGPU.String(),
		},
		Controller: ControllerConfig{
			Speed: 0.2,
			Bindings: map[string]string{
				"w": camera.DirectionForward.String(),
				"s": camera.DirectionBackward.String(),
				"a": camera.DirectionLeft.String(),
				"d": camera.DirectionRight.String(),
			},
		},
		Window: WindowConfig{
			Title:  "oxy-cam",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			ClearColor:  []float64{0.1, 0.2, 0.3, 1.0},
		},
		Log: logging.DefaultConfig(),
	}
}

// New returns a viper instance seeded with the defaults and OXYCAM_* environment overrides.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every leaf key so environment overrides reach Unmarshal.
// Bindings are left out: viper merges map keys from defaults and file, and a
// bindings section in the file replaces the defaults rather than extending them.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("camera.eye", cfg.Camera.Eye)
	v.SetDefault("camera.target", cfg.Camera.Target)
	v.SetDefault("camera.up", cfg.Camera.Up)
	v.SetDefault("camera.fovy_degrees", cfg.Camera.FovyDegrees)
	v.SetDefault("camera.near", cfg.Camera.Near)
	v.SetDefault("camera.far", cfg.Camera.Far)
	v.SetDefault("camera.clip_space", cfg.Camera.ClipSpace)

	v.SetDefault("controller.speed", cfg.Controller.Speed)

	v.SetDefault("window.title", cfg.Window.Title)
	v.SetDefault("window.width", cfg.Window.Width)
	v.SetDefault("window.height", cfg.Window.Height)

	v.SetDefault("renderer.present_mode", cfg.Renderer.PresentMode)
	v.SetDefault("renderer.clear_color", cfg.Renderer.ClearColor)
	v.SetDefault("renderer.force_software", cfg.Renderer.ForceSoftware)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}

// Load reads configuration from path (YAML) and the environment.
// An empty path searches ./oxycam.yaml; a missing file in that case means defaults.
// The returned viper instance can be passed to Watch.
func Load(path string) (*Config, *viper.Viper, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("oxycam")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := Decode(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Decode unmarshals the current viper state and validates it.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyFallbacks()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFallbacks fills fields a file may blank out with usable values.
func (c *Config) applyFallbacks() {
	def := DefaultConfig()
	c.Window.Title = common.Coalesce(c.Window.Title, def.Window.Title)
	c.Camera.ClipSpace = common.Coalesce(c.Camera.ClipSpace, def.Camera.ClipSpace)
	c.Renderer.PresentMode = common.Coalesce(c.Renderer.PresentMode, def.Renderer.PresentMode)
	c.Log.Format = common.Coalesce(c.Log.Format, def.Log.Format)
	c.Controller.Bindings = common.CoalesceMap(c.Controller.Bindings, def.Controller.Bindings)
}

// Validate reports every problem in the configuration, joined.
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, c.Camera.validate()...)

	if c.Controller.Speed <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v must be positive", ErrInvalidSpeed, c.Controller.Speed))
	}
	if _, err := c.Controller.ResolveBindings(); err != nil {
		errs = append(errs, err)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height))
	}

	if _, ok := renderer.ParsePresentMode(strings.ToLower(c.Renderer.PresentMode)); !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownPresentMode, c.Renderer.PresentMode))
	}
	if n := len(c.Renderer.ClearColor); n != 0 && n != 4 {
		errs = append(errs, fmt.Errorf("renderer.clear_color: want 4 components, got %d", n))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c CameraConfig) validate() []error {
	var errs []error

	eye, errEye := vec3("camera.eye", c.Eye)
	target, errTarget := vec3("camera.target", c.Target)
	up, errUp := vec3("camera.up", c.Up)
	for _, err := range []error{errEye, errTarget, errUp} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		forward := target.Sub(eye)
		switch {
		case forward.Len() == 0:
			errs = append(errs, fmt.Errorf("%w: eye equals target", ErrDegenerateView))
		case up.Len() == 0:
			errs = append(errs, fmt.Errorf("%w: up is zero", ErrDegenerateView))
		case forward.Cross(up).Len() == 0:
			errs = append(errs, fmt.Errorf("%w: up is parallel to the view direction", ErrDegenerateView))
		}
	}

	if c.FovyDegrees <= 0 || c.FovyDegrees >= 180 {
		errs = append(errs, fmt.Errorf("%w: fovy %v must be in (0, 180) degrees", ErrInvalidProjection, c.FovyDegrees))
	}
	if c.Near <= 0 {
		errs = append(errs, fmt.Errorf("%w: near %v must be positive", ErrInvalidProjection, c.Near))
	}
	if c.Far <= c.Near {
		errs = append(errs, fmt.Errorf("%w: far %v must exceed near %v", ErrInvalidProjection, c.Far, c.Near))
	}

	if _, err := camera.ParseClipSpace(c.ClipSpace); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrUnknownClipSpace, err))
	}
	return errs
}

func vec3(name string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrDegenerateView, name, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

// CameraOptions converts the camera section into camera builder options.
// The aspect ratio is derived from the window size.
func (c *Config) CameraOptions() ([]camera.CameraBuilderOption, error) {
	cs, err := camera.ParseClipSpace(c.Camera.ClipSpace)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownClipSpace, err)
	}
	eye, err := vec3("camera.eye", c.Camera.Eye)
	if err != nil {
		return nil, err
	}
	target, err := vec3("camera.target", c.Camera.Target)
	if err != nil {
		return nil, err
	}
	up, err := vec3("camera.up", c.Camera.Up)
	if err != nil {
		return nil, err
	}

	opts := []camera.CameraBuilderOption{
		camera.WithEye(eye.X(), eye.Y(), eye.Z()),
		camera.WithTarget(target.X(), target.Y(), target.Z()),
		camera.WithUp(up.X(), up.Y(), up.Z()),
		camera.WithFovy(mgl32.DegToRad(c.Camera.FovyDegrees)),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
		camera.WithClipSpace(cs),
	}
	if c.Window.Height > 0 {
		opts = append(opts, camera.WithAspect(float32(c.Window.Width)/float32(c.Window.Height)))
	}
	return opts, nil
}

// ResolveBindings resolves the configured key names and directions to key codes.
func (c ControllerConfig) ResolveBindings() (map[uint32]camera.Direction, error) {
	out := make(map[uint32]camera.Direction, len(c.Bindings))
	var errs []error
	for keyName, dirName := range c.Bindings {
		code, ok := common.KeyCode(keyName)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownKey, keyName))
			continue
		}
		dir, ok := camera.ParseDirection(strings.ToLower(strings.TrimSpace(dirName)))
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q bound to %q", ErrUnknownDirection, dirName, keyName))
			continue
		}
		out[code] = dir
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// ControllerOptions converts the controller section into controller builder options.
func (c *Config) ControllerOptions() ([]camera.CameraControllerOption, error) {
	bindings, err := c.Controller.ResolveBindings()
	if err != nil {
		return nil, err
	}
	return []camera.CameraControllerOption{
		camera.WithSpeed(c.Controller.Speed),
		camera.WithBindings(bindings),
	}, nil
}

// RendererOptions converts the renderer section into renderer builder options.
func (c *Config) RendererOptions() []renderer.RendererBuilderOption {
	mode, _ := renderer.ParsePresentMode(strings.ToLower(c.Renderer.PresentMode))
	opts := []renderer.RendererBuilderOption{
		renderer.WithPresentMode(mode),
		renderer.WithForceSoftwareRenderer(c.Renderer.ForceSoftware),
	}
	if cc := c.Renderer.ClearColor; len(cc) == 4 {
		opts = append(opts, renderer.WithClearColor(cc[0], cc[1], cc[2], cc[3]))
	}
	return opts
}
