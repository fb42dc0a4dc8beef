package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// CameraUniformBinding is the binding index of the camera uniform within its bind group.
const CameraUniformBinding = 0

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches CameraUniform layout exactly (64 bytes, one column-major mat4x4<f32>).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// CameraUniform is the GPU-aligned copy of the camera's view-projection matrix.
// It is a cache: it reflects the camera as of the most recent UpdateViewProj call
// and must be refreshed after every camera mutation and before every upload.
// Size: 64 bytes.
type CameraUniform struct {
	ViewProj [16]float32 // offset 0: combined view-projection matrix (mat4x4<f32>, column-major)
}

// NewCameraUniform creates a zeroed CameraUniform.
//
// Returns:
//   - *CameraUniform: the zeroed uniform
func NewCameraUniform() *CameraUniform {
	return &CameraUniform{}
}

// UpdateViewProj overwrites the stored matrix with the camera's current view-projection matrix.
//
// Parameters:
//   - cam: the camera to copy from
func (u *CameraUniform) UpdateViewProj(cam Camera) {
	u.ViewProj = cam.BuildViewProjectionMatrix()
}

// Size returns the size of the CameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (u *CameraUniform) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the CameraUniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized little-endian byte buffer
func (u *CameraUniform) Marshal() []byte {
	buf := make([]byte, u.Size())
	common.PutFloat32s(buf, u.ViewProj[:])
	return buf
}

// CameraBindGroupLayoutDescriptor describes the camera bind group: one 64-byte uniform
// buffer at CameraUniformBinding, read by the vertex stage.
//
// Parameters:
//   - label: the layout label
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func CameraBindGroupLayoutDescriptor(label string) wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    CameraUniformBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(unsafe.Sizeof(CameraUniform{})),
				},
			},
		},
	}
}
