package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceTarget is the window side of the renderer: something that can describe a WebGPU
// surface and report its framebuffer size.
type SurfaceTarget interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend

	width  int
	height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingClearColor    *wgpu.Color
}

// Renderer defines the interface for the rendering system.
//
// It covers what the camera needs from the GPU: a configured surface, a bind group for the
// camera uniform, per-frame buffer writes, and a frame that is begun, ended and presented.
// All methods must be called from the thread that created the Renderer.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// Zero-area sizes (a minimized window) are ignored and the previous configuration is kept.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the last surface size the renderer was configured with.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// SetPresentMode sets the surface present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitBindGroup creates GPU buffers and a bind group from the provider's layout descriptor
	// and stores them on the provider. Providers that are already initialized are left untouched.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to initialize
	//
	// Returns:
	//   - error: an error if bind group creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	// Writes whose target buffer does not exist yet are dropped.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	//
	// Returns:
	//   - int: the number of writes queued
	WriteBuffers(writes []bind_group_provider.BufferWrite) int

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	// Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface; call Present() after EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	Present()

	// Release releases every GPU object owned by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend type, bound to the target's surface.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - target: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if the adapter or device could not be acquired
func NewRenderer(backendType RendererBackendType, target SurfaceTarget, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	desc := target.SurfaceDescriptor()
	if desc == nil {
		return nil, fmt.Errorf("renderer: surface target has no surface descriptor")
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		backend, err := newWGPURendererBackend(desc, r.forceFallbackAdapter)
		if err != nil {
			return nil, fmt.Errorf("renderer: %w", err)
		}
		r.backend = backend
	}

	r.applyPending()
	r.Resize(target.Width(), target.Height())
	return r, nil
}

// newRendererWithBackend wires an existing backend, bypassing adapter and device creation.
func newRendererWithBackend(backend RendererBackend, width, height int, options ...RendererBuilderOption) *renderer {
	r := &renderer{backend: backend}
	for _, opt := range options {
		opt(r)
	}
	r.applyPending()
	r.Resize(width, height)
	return r
}

func (r *renderer) applyPending() {
	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	if r.pendingClearColor != nil {
		r.backend.SetClearColor(*r.pendingClearColor)
	}
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	if r.width > 0 && r.height > 0 {
		r.backend.ConfigureSurface(r.width, r.height)
	}
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider) error {
	if provider.Initialized() {
		return nil
	}
	if err := r.backend.InitBindGroup(provider); err != nil {
		return fmt.Errorf("init bind group %q: %w", provider.Label(), err)
	}
	return nil
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) int {
	ready := make([]bind_group_provider.BufferWrite, 0, len(writes))
	for _, w := range writes {
		if w.Provider == nil || w.Provider.Buffer(w.Binding) == nil {
			continue
		}
		ready = append(ready, w)
	}
	if len(ready) > 0 {
		r.backend.WriteBuffers(ready)
	}
	return len(ready)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.backend.Release()
}
