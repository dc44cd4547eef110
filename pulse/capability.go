package pulse

import "log/slog"

// Capability describes the GPU support found on the host.
type Capability struct {
	// Number of adapters the runtime reported. Zero in a browser, where
	// adapters can not be listed without requesting one.
	Adapters int

	// Backend and type of the first reported adapter, if known.
	Backend     string
	AdapterType string
}

func (c Capability) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("adapters", c.Adapters),
		slog.String("backend", c.Backend),
		slog.String("type", c.AdapterType),
	)
}
