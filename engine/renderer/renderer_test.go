package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records calls instead of touching a GPU.
type fakeBackend struct {
	configured  [][2]int
	presentMode PresentMode
	clearColor  wgpu.Color
	initCalls   int
	initErr     error
	writes      []bind_group_provider.BufferWrite
	calls       []string
	released    bool
}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configured = append(f.configured, [2]int{width, height})
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.presentMode = mode }

func (f *fakeBackend) SetClearColor(color wgpu.Color) { f.clearColor = color }

func (f *fakeBackend) InitBindGroup(provider bind_group_provider.BindGroupProvider) error {
	f.initCalls++
	return f.initErr
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes, writes...)
}

func (f *fakeBackend) BeginFrame() error {
	f.calls = append(f.calls, "begin")
	return nil
}

func (f *fakeBackend) EndFrame() { f.calls = append(f.calls, "end") }

func (f *fakeBackend) Present() { f.calls = append(f.calls, "present") }

func (f *fakeBackend) Release() { f.released = true }

func TestNewRendererWithBackendAppliesOptions(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 800, 600,
		WithPresentMode(PresentModeUncapped),
		WithClearColor(0.5, 0.25, 0, 1),
	)

	assert.Equal(t, PresentModeUncapped, fb.presentMode)
	assert.Equal(t, wgpu.Color{R: 0.5, G: 0.25, B: 0, A: 1}, fb.clearColor)
	assert.Equal(t, [][2]int{{800, 600}}, fb.configured)

	w, h := r.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestResizeSkipsZeroArea(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 800, 600)

	r.Resize(0, 600)
	r.Resize(800, 0)
	r.Resize(1024, 768)

	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, fb.configured)
	w, h := r.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestSetPresentModeReconfigures(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 640, 480)

	r.SetPresentMode(PresentModeUncapped)

	assert.Equal(t, PresentModeUncapped, fb.presentMode)
	assert.Len(t, fb.configured, 2)
}

func TestInitBindGroupWrapsErrors(t *testing.T) {
	fb := &fakeBackend{initErr: errors.New("out of memory")}
	r := newRendererWithBackend(fb, 640, 480)
	p := bind_group_provider.NewBindGroupProvider("camera_0")

	err := r.InitBindGroup(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, fb.initErr)
	assert.Contains(t, err.Error(), "camera_0")
	assert.Equal(t, 1, fb.initCalls)
}

func TestWriteBuffersDropsUninitializedTargets(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 640, 480)
	p := bind_group_provider.NewBindGroupProvider("camera_0")

	n := r.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: p, Binding: 0, Data: make([]byte, 64)},
		{Provider: nil, Binding: 0, Data: make([]byte, 64)},
	})

	assert.Zero(t, n)
	assert.Empty(t, fb.writes)
}

func TestFrameDelegatesInOrder(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 640, 480)

	require.NoError(t, r.BeginFrame())
	r.EndFrame()
	r.Present()
	r.Release()

	assert.Equal(t, []string{"begin", "end", "present"}, fb.calls)
	assert.True(t, fb.released)
}

func TestParsePresentMode(t *testing.T) {
	m, ok := ParsePresentMode("uncapped")
	assert.True(t, ok)
	assert.Equal(t, PresentModeUncapped, m)

	m, ok = ParsePresentMode("vsync")
	assert.True(t, ok)
	assert.Equal(t, PresentModeVSync, m)

	_, ok = ParsePresentMode("triple")
	assert.False(t, ok)
}
