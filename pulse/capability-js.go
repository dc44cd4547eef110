//go:build js

package pulse

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

// ProbeCapability checks whether the browser exposes navigator.gpu.
func ProbeCapability(instance *wgpu.Instance) (Capability, error) {
	gpu := js.Global().Get("navigator").Get("gpu")
	if gpu.IsUndefined() || gpu.IsNull() {
		return Capability{}, newf(ErrCapabilityUnavailable, "navigator.gpu not found")
	}

	return Capability{Backend: "WebGPU"}, nil
}
