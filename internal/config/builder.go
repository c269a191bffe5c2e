package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithIdentity sets the name and author reported to the GUI.
func (b *ConfigBuilder) WithIdentity(name, author string) *ConfigBuilder {
	b.cfg.EngineName = name
	b.cfg.Author = author
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithInboxSize sets the worker's inbound queue capacity.
func (b *ConfigBuilder) WithInboxSize(size int) *ConfigBuilder {
	b.cfg.InboxSize = size
	return b
}

// WithDebug controls whether UCI debug mode starts on.
func (b *ConfigBuilder) WithDebug(enabled bool) *ConfigBuilder {
	b.cfg.Debug = enabled
	return b
}
