package registry

// Config holds registry initialization parameters.
type Config struct {
	Capacity int    `json:"capacity,omitempty" yaml:"capacity,omitempty"` // Initial slice capacity hint.
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty"` // Named observer from the observability registry.
}

// DefaultConfig returns a configuration with no capacity hint and events
// discarded.
func DefaultConfig() Config {
	return Config{
		Observer: "noop",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Capacity > 0 {
		c.Capacity = source.Capacity
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}
