package fragment

import (
	"sort"
	"strings"
)

// Config holds configuration for fragment loading.
type Config struct {
	// DevelopmentMode renders a visible warning when a fragment fails to load.
	DevelopmentMode bool `mapstructure:"development_mode" default:"false"`
	// Concurrency bounds parallel loads during bootstrap (0 = unbounded).
	Concurrency int `mapstructure:"concurrency" default:"0"`
	// Capabilities is a comma separated list of rehydration hooks to enable.
	Capabilities string `mapstructure:"capabilities" default:"tooltip,popover"`
}

// CapabilityNames returns the enabled capability names that have a known hook.
func (c Config) CapabilityNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, name := range strings.Split(c.Capabilities, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := Capabilities[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options translates the configuration into loader options.
func (c Config) Options() []Option {
	opts := []Option{
		WithDevelopmentMode(c.DevelopmentMode),
		WithConcurrency(c.Concurrency),
	}
	for _, name := range c.CapabilityNames() {
		opts = append(opts, WithHook(name, Capabilities[name]))
	}
	return opts
}
