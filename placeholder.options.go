package placeholder

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	prefix             string
	suffix             string
	separator          string // empty disables default-value syntax
	escape             byte
	hasEscape          bool
	ignoreUnresolvable bool
	logger             *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		prefix:             DefaultPrefix,
		suffix:             DefaultSuffix,
		separator:          DefaultSeparator,
		escape:             DefaultEscape,
		hasEscape:          true,
		ignoreUnresolvable: false,
		logger:             nil,
	}
}

// WithMarkers sets the placeholder start and end markers.
// Default: "${" and "}"
func WithMarkers(prefix, suffix string) Option {
	return func(c *engineConfig) {
		c.prefix = prefix
		c.suffix = suffix
	}
}

// WithSeparator sets the literal separating a key from its default value.
// Default: ":"
func WithSeparator(separator string) Option {
	return func(c *engineConfig) {
		c.separator = separator
	}
}

// WithoutSeparator disables default-value syntax entirely; separator
// occurrences inside placeholders become part of the key.
func WithoutSeparator() Option {
	return func(c *engineConfig) {
		c.separator = ""
	}
}

// WithEscape sets the character that neutralizes the structural meaning of
// the marker that follows it.
// Default: '\\'
func WithEscape(escape byte) Option {
	return func(c *engineConfig) {
		c.escape = escape
		c.hasEscape = true
	}
}

// WithoutEscape disables escape handling; every marker occurrence is
// structural.
func WithoutEscape() Option {
	return func(c *engineConfig) {
		c.escape = 0
		c.hasEscape = false
	}
}

// WithIgnoreUnresolvable controls the treatment of keys the resolver cannot
// satisfy and that carry no default: when true they are left in the output
// as their original source text, when false they fail resolution.
// Default: false
func WithIgnoreUnresolvable(ignore bool) Option {
	return func(c *engineConfig) {
		c.ignoreUnresolvable = ignore
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
