package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
)

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine has no window")

// engine implements the Engine interface.
// Every method except Post must be called from the thread that runs the window loop.
type engine struct {
	window   window.Window
	renderer renderer.Renderer

	camera     camera.Camera
	controller camera.CameraController
	uniform    *camera.CameraUniform

	bindGroupReady bool

	// updateChannel carries work posted from other goroutines (e.g. config reloads)
	// into the frame loop.
	updateChannel chan func()

	quitKey uint32
	quit    bool

	baseLogger zerolog.Logger
	logger     zerolog.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time
}

// Engine drives the camera demo: it turns window key events into controller intents,
// advances the camera once per frame, uploads the camera uniform and presents a frame.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running headless
	Window() window.Window

	// Renderer returns the renderer the camera uniform is uploaded through.
	//
	// Returns:
	//   - renderer.Renderer: the renderer, or nil when running headless
	Renderer() renderer.Renderer

	// Camera returns the camera moved by the controller.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Controller returns the keyboard controller.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Uniform returns the CPU-side camera uniform as of the last Tick.
	//
	// Returns:
	//   - *camera.CameraUniform: the uniform
	Uniform() *camera.CameraUniform

	// HandleKeyDown forwards a key press to the controller. The quit key stops the loop instead.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	HandleKeyDown(keyCode uint32)

	// HandleKeyUp forwards a key release to the controller.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	HandleKeyUp(keyCode uint32)

	// Resize updates the camera aspect ratio and the renderer surface.
	// A zero width or height (minimized window) is ignored.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// Tick runs one simulation step: controller update, uniform refresh, uniform upload.
	//
	// Returns:
	//   - error: an error if the camera bind group could not be created
	Tick() error

	// Frame runs posted updates, Tick, and one clear-and-present render pass.
	//
	// Returns:
	//   - error: an error from Tick or from acquiring the swapchain texture
	Frame() error

	// Post queues fn to run on the frame loop before the next Tick.
	// Safe to call from any goroutine.
	//
	// Parameters:
	//   - fn: the work to run
	//
	// Returns:
	//   - bool: false if the queue is full and fn was dropped
	Post(fn func()) bool

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run wires the window callbacks and blocks in the window loop until the window closes.
	// GPU resources are released before it returns.
	//
	// Returns:
	//   - error: ErrNoWindow, or an error if the camera bind group could not be created
	Run() error

	// Quit asks the loop to stop after the current frame. Safe to call multiple times.
	Quit()

	// Running reports whether Quit has not been called.
	//
	// Returns:
	//   - bool: true until Quit
	Running() bool
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A default camera and controller are created when none are supplied; the window and
// renderer are optional so the engine can run headless.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		updateChannel: make(chan func(), 16),
		quitKey:       common.KeyEsc,
		baseLogger:    zerolog.Nop(),
		logger:        zerolog.Nop(),
		uniform:       camera.NewCameraUniform(),
	}
	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.baseLogger)
	}
	e.uniform.UpdateViewProj(e.camera)

	if e.window != nil {
		e.window.SetKeyDownCallback(e.HandleKeyDown)
		e.window.SetKeyUpCallback(e.HandleKeyUp)
		e.window.SetResizeCallback(e.Resize)
		if h := e.window.Height(); h > 0 {
			e.camera.SetAspect(float32(e.window.Width()) / float32(h))
		}
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Uniform() *camera.CameraUniform {
	return e.uniform
}

func (e *engine) HandleKeyDown(keyCode uint32) {
	if keyCode == e.quitKey {
		e.logger.Info().Msg("quit key pressed")
		e.Quit()
		return
	}
	if !e.controller.ProcessInput(camera.InputEvent{Key: keyCode, State: camera.KeyPressed}) {
		e.logger.Trace().Uint32("key", keyCode).Msg("unbound key")
	}
}

func (e *engine) HandleKeyUp(keyCode uint32) {
	e.controller.ProcessInput(camera.InputEvent{Key: keyCode, State: camera.KeyReleased})
}

func (e *engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		e.logger.Debug().Int("width", width).Int("height", height).Msg("ignoring zero-area resize")
		return
	}
	e.camera.SetAspect(float32(width) / float32(height))
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	e.logger.Info().Int("width", width).Int("height", height).Msg("resized")
}

func (e *engine) Tick() error {
	e.controller.Update(e.camera)
	e.uniform.UpdateViewProj(e.camera)
	if common.HasNaN(e.uniform.ViewProj[:]) {
		e.logger.Debug().
			Interface("eye", e.camera.Eye()).
			Interface("target", e.camera.Target()).
			Msg("view-projection is not finite")
	}

	if e.renderer == nil {
		return nil
	}
	if err := e.initBindGroup(); err != nil {
		return err
	}
	e.renderer.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: e.camera.BindGroupProvider(),
		Binding:  camera.CameraUniformBinding,
		Offset:   0,
		Data:     e.uniform.Marshal(),
	}})
	return nil
}

// initBindGroup creates the camera uniform buffer and bind group on first use.
func (e *engine) initBindGroup() error {
	if e.bindGroupReady {
		return nil
	}
	if err := e.renderer.InitBindGroup(e.camera.BindGroupProvider()); err != nil {
		return fmt.Errorf("camera uniform: %w", err)
	}
	e.bindGroupReady = true
	return nil
}

func (e *engine) Frame() error {
	e.drainUpdates()

	if err := e.Tick(); err != nil {
		return err
	}

	if e.renderer != nil {
		if err := e.renderer.BeginFrame(); err != nil {
			return fmt.Errorf("begin frame: %w", err)
		}
		e.renderer.EndFrame()
		e.renderer.Present()
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		if !e.lastFrame.IsZero() {
			if remaining := e.renderFrameLimit - time.Since(e.lastFrame); remaining > 0 {
				time.Sleep(remaining)
			}
		}
		e.lastFrame = time.Now()
	}
	return nil
}

func (e *engine) drainUpdates() {
	for {
		select {
		case fn := <-e.updateChannel:
			fn()
		default:
			return
		}
	}
}

func (e *engine) Post(fn func()) bool {
	select {
	case e.updateChannel <- fn:
		return true
	default:
		return false
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	if e.renderer != nil {
		if err := e.initBindGroup(); err != nil {
			return err
		}
	}
	e.logger.Info().
		Int("width", e.window.Width()).
		Int("height", e.window.Height()).
		Msg("engine started")

	e.window.SetUpdateCallback(func() {
		if e.quit {
			e.window.RequestClose()
			return
		}
		if err := e.Frame(); err != nil {
			// A lost or outdated swapchain texture recovers on the next frame.
			e.logger.Warn().Err(err).Msg("frame failed")
		}
	})
	e.window.ProcessMessages()

	if e.renderer != nil {
		e.camera.BindGroupProvider().Release()
		e.renderer.Release()
	}
	e.logger.Info().Msg("engine stopped")
	return nil
}

func (e *engine) Quit() {
	if e.quit {
		return
	}
	e.quit = true
	if e.window != nil {
		e.window.RequestClose()
	}
}

func (e *engine) Running() bool {
	return !e.quit
}
