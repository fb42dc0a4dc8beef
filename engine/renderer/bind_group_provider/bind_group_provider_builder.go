package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithLayoutDescriptor sets the layout descriptor the Renderer builds the bind group from.
//
// Parameters:
//   - desc: the bind group layout descriptor
//
// Returns:
//   - BindGroupProviderOption: a function that sets the layout descriptor for this provider
func WithLayoutDescriptor(desc wgpu.BindGroupLayoutDescriptor) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.layoutDescriptor = desc
	}
}
