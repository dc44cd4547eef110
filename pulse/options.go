package pulse

import (
	"os"
	"strings"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

const defaultAcquireTimeout = 10 * time.Second

// Options controls how the adapter and device are acquired.
type Options struct {
	// Use the software fallback adapter instead of a hardware one.
	ForceFallbackAdapter bool

	PowerPreference wgpu.PowerPreference

	// Maximum time to wait for each of the adapter and device requests.
	// A zero value uses a default of ten seconds.
	Timeout time.Duration
}

// OptionsFromEnv reads the options from the environment.
// WGPU_FORCE_FALLBACK_ADAPTER=1 selects the fallback adapter and
// WGPU_POWER_PREFERENCE (low or high) selects the power preference.
func OptionsFromEnv() Options {
	return optionsFromLookup(os.Getenv)
}

func optionsFromLookup(getenv func(string) string) Options {
	var opts Options

	opts.ForceFallbackAdapter = getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

	switch strings.ToLower(getenv("WGPU_POWER_PREFERENCE")) {
	case "low":
		opts.PowerPreference = wgpu.PowerPreferenceLowPower
	case "high":
		opts.PowerPreference = wgpu.PowerPreferenceHighPerformance
	}

	return opts.withDefaults()
}

func (opts Options) withDefaults() Options {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultAcquireTimeout
	}

	return opts
}
