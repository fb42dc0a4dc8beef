package camera

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ClipSpace identifies the clip-space convention expected by a graphics backend.
// The projection matrix produced by this package follows the OpenGL convention
// (right-handed, depth in [-1, 1], +Y up); the ClipSpace correction remaps that
// output to the convention of the backend that consumes the uniform.
type ClipSpace int

const (
	// ClipSpaceWebGPU maps depth from [-1, 1] to [0, 1]. Metal and Direct3D share this convention.
	ClipSpaceWebGPU ClipSpace = iota

	// ClipSpaceOpenGL leaves the projection untouched.
	ClipSpaceOpenGL

	// ClipSpaceVulkan maps depth to [0, 1] and flips Y, since Vulkan's framebuffer Y axis points down.
	ClipSpaceVulkan
)

// Column-major correction matrices, one per ClipSpace.
var (
	openGLClipCorrection = mgl32.Ident4()

	webGPUClipCorrection = mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0.5, 0,
		0, 0, 0.5, 1,
	}

	vulkanClipCorrection = mgl32.Mat4{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, 0.5, 0,
		0, 0, 0.5, 1,
	}
)

// Matrix returns the constant correction matrix for the clip space.
// Unknown values fall back to the identity.
//
// Returns:
//   - mgl32.Mat4: the column-major correction matrix
func (c ClipSpace) Matrix() mgl32.Mat4 {
	switch c {
	case ClipSpaceWebGPU:
		return webGPUClipCorrection
	case ClipSpaceVulkan:
		return vulkanClipCorrection
	default:
		return openGLClipCorrection
	}
}

func (c ClipSpace) String() string {
	switch c {
	case ClipSpaceWebGPU:
		return "webgpu"
	case ClipSpaceOpenGL:
		return "opengl"
	case ClipSpaceVulkan:
		return "vulkan"
	default:
		return fmt.Sprintf("ClipSpace(%d)", int(c))
	}
}

// ParseClipSpace resolves a backend name to its ClipSpace.
// Accepted names are "webgpu", "wgpu", "metal", "d3d", "directx", "opengl", "gl" and "vulkan",
// matched case-insensitively.
//
// Parameters:
//   - name: the backend name
//
// Returns:
//   - ClipSpace: the matching clip space
//   - error: error if the name is not recognized
func ParseClipSpace(name string) (ClipSpace, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "webgpu", "wgpu", "metal", "d3d", "directx":
		return ClipSpaceWebGPU, nil
	case "opengl", "gl":
		return ClipSpaceOpenGL, nil
	case "vulkan":
		return ClipSpaceVulkan, nil
	default:
		return ClipSpaceWebGPU, fmt.Errorf("unknown clip space %q", name)
	}
}
