//go:build !js

package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ProbeCapability checks whether the runtime exposes at least one GPU adapter.
// The adapters found are released again, nothing is retained.
func ProbeCapability(instance *wgpu.Instance) (Capability, error) {
	if instance == nil {
		return Capability{}, newf(ErrCapabilityUnavailable, "no webgpu instance")
	}

	adapters := instance.EnumerateAdapters(nil)

	defer func() {
		for _, adapter := range adapters {
			adapter.Release()
		}
	}()

	if len(adapters) == 0 {
		return Capability{}, newf(ErrCapabilityUnavailable, "no gpu adapter found")
	}

	info := adapters[0].GetInfo()

	return Capability{
		Adapters:    len(adapters),
		Backend:     info.BackendType.String(),
		AdapterType: info.AdapterType.String(),
	}, nil
}
