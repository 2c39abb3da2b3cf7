package placeholder

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-placeholder/internal"
)

// Engine parses and resolves placeholder expressions with a fixed marker
// configuration. An Engine is immutable after construction and safe for
// concurrent use: every Resolve call carries its own state.
type Engine struct {
	cfg    *engineConfig
	logger *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.prefix == "" {
		return nil, NewConfigError(ErrMsgEmptyPrefix)
	}
	if cfg.suffix == "" {
		return nil, NewConfigError(ErrMsgEmptySuffix)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgEngineCreated,
		zap.String(LogFieldPrefix, cfg.prefix),
		zap.String(LogFieldSuffix, cfg.suffix),
	)

	return &Engine{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse turns text into its literal and placeholder segments. It never
// fails: text that does not form a balanced placeholder stays literal
// content, unchanged. The returned value can be resolved repeatedly,
// against different resolvers.
func (e *Engine) Parse(text string) *ParsedValue {
	e.logger.Debug(LogMsgParseStart, zap.Int(LogFieldSourceLen, len(text)))

	scanner := internal.NewScanner(text, e.markers(), e.logger)
	p := &parser{tokens: scanner.Scan()}
	parts := p.parseParts()

	e.logger.Debug(LogMsgParseEnd, zap.Int(LogFieldParts, len(parts)))
	return NewParsedValue(text, parts)
}

// Resolve substitutes every placeholder in parsed with a value from
// resolver, applying defaults, transitive resolution of resolver-returned
// values, and circular-reference detection. It returns a *ResolutionError
// for unresolvable or circular placeholders; resolution of the whole value
// aborts on the first failure.
func (e *Engine) Resolve(parsed *ParsedValue, resolver Resolver) (string, error) {
	if parsed == nil {
		return "", NewResolveInputError(ErrMsgNilParsedValue)
	}
	if resolver == nil {
		return "", NewResolveInputError(ErrMsgNilResolver)
	}

	e.logger.Debug(LogMsgResolveStart, zap.Int(LogFieldSourceLen, len(parsed.Source())))

	state := &resolution{
		engine:   e,
		resolver: resolver,
		visited:  make(map[string]struct{}),
	}
	out, err := state.resolveValue(parsed, parsed.Source())
	if err != nil {
		return "", err
	}

	e.logger.Debug(LogMsgResolveEnd, zap.Int(LogFieldOutputLen, len(out)))
	return out, nil
}

// ReplacePlaceholders parses text and resolves it against resolver in one
// step. For values that are resolved repeatedly, parse once with Parse and
// reuse the result instead.
func (e *Engine) ReplacePlaceholders(text string, resolver Resolver) (string, error) {
	return e.Resolve(e.Parse(text), resolver)
}

// markers exposes the marker configuration in the scanner's terms.
func (e *Engine) markers() internal.Markers {
	return internal.Markers{
		Prefix:    e.cfg.prefix,
		Suffix:    e.cfg.suffix,
		Separator: e.cfg.separator,
		Escape:    e.cfg.escape,
		HasEscape: e.cfg.hasEscape,
	}
}
