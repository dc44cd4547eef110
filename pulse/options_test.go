package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func lookupOf(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestOptionsFromEmptyEnv(t *testing.T) {
	opts := optionsFromLookup(lookupOf(nil))

	assert.False(t, opts.ForceFallbackAdapter)
	assert.Equal(t, wgpu.PowerPreferenceUndefined, opts.PowerPreference)
	assert.Equal(t, defaultAcquireTimeout, opts.Timeout)
}

func TestOptionsFromEnv(t *testing.T) {
	opts := optionsFromLookup(lookupOf(map[string]string{
		"WGPU_FORCE_FALLBACK_ADAPTER": "1",
		"WGPU_POWER_PREFERENCE":       "HIGH",
	}))

	assert.True(t, opts.ForceFallbackAdapter)
	assert.Equal(t, wgpu.PowerPreferenceHighPerformance, opts.PowerPreference)

	opts = optionsFromLookup(lookupOf(map[string]string{
		"WGPU_FORCE_FALLBACK_ADAPTER": "yes",
		"WGPU_POWER_PREFERENCE":       "low",
	}))

	assert.False(t, opts.ForceFallbackAdapter)
	assert.Equal(t, wgpu.PowerPreferenceLowPower, opts.PowerPreference)
}
