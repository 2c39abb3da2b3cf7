package placeholder

import (
	"errors"
	"strings"
)

// resolution carries the state of one top-level Resolve call: the resolver,
// the set of keys currently under resolution (for circular-reference
// detection), and the engine for re-parsing resolver-returned values. All
// state is local to the call, which keeps the engine reentrant.
type resolution struct {
	engine   *Engine
	resolver Resolver
	visited  map[string]struct{}
}

// resolveValue resolves the parts of a value left to right and concatenates
// the results. enclosing is the source text of the value for diagnostics.
func (s *resolution) resolveValue(value *ParsedValue, enclosing string) (string, error) {
	var sb strings.Builder
	for _, part := range value.Parts() {
		out, err := s.resolvePart(part, enclosing)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// resolvePart resolves a single part.
func (s *resolution) resolvePart(part Part, enclosing string) (string, error) {
	switch p := part.(type) {
	case *TextPart:
		return p.Text(), nil
	case *PlaceholderPart:
		return s.resolvePlaceholder(p, enclosing)
	default:
		return "", NewResolveInputError(ErrMsgUnknownPartType)
	}
}

// resolvePlaceholder resolves one placeholder occurrence:
//
//  1. For a split body with no nested placeholders, the full body text is
//     tried as a single key first, so that a key containing the separator
//     wins over key/default splitting when the resolver knows it.
//  2. The key expression is resolved to a concrete key.
//  3. The key is looked up; a returned value is transitively re-parsed and
//     resolved, since data sources may themselves hold placeholders.
//  4. A miss falls back to the default expression when one was parsed.
//  5. Otherwise the placeholder is either emitted verbatim (lenient mode)
//     or resolution fails.
func (s *resolution) resolvePlaceholder(p *PlaceholderPart, enclosing string) (string, error) {
	if _, hasDefault := p.Default(); hasDefault && p.Simple() {
		out, found, err := s.lookup(p.Text(), enclosing)
		if err != nil || found {
			return out, err
		}
	}

	key, err := s.resolveValue(p.Key(), enclosing)
	if err != nil {
		return "", err
	}

	out, found, err := s.lookup(key, enclosing)
	if err != nil {
		return "", err
	}
	if found {
		return out, nil
	}

	if fallback, hasDefault := p.Default(); hasDefault {
		return s.resolveValue(fallback, enclosing)
	}

	if s.engine.cfg.ignoreUnresolvable {
		return p.Raw(), nil
	}
	return "", newUnresolvableError(key, enclosing)
}

// lookup consults the resolver for key and transitively resolves the
// returned value. The circular check runs before the resolver is invoked:
// a key that is already under resolution can never be looked up again, which
// is the engine's termination guarantee for self-referential data. found
// reports whether the resolver had a value for key.
func (s *resolution) lookup(key, enclosing string) (out string, found bool, err error) {
	if _, active := s.visited[key]; active {
		return "", false, newCircularError(key, enclosing)
	}
	s.visited[key] = struct{}{}
	defer delete(s.visited, key)

	value, ok := s.resolver.Resolve(key)
	if !ok {
		return "", false, nil
	}

	out, err = s.resolveTransitive(value, enclosing)
	return out, true, err
}

// resolveTransitive re-parses and resolves a resolver-returned value. When
// resolution of that value fails, the enclosing value text is appended to
// the error's chain, building the innermost-first diagnostics.
func (s *resolution) resolveTransitive(value, enclosing string) (string, error) {
	if !strings.Contains(value, s.engine.cfg.prefix) {
		return value, nil
	}

	parsed := s.engine.Parse(value)
	out, err := s.resolveValue(parsed, parsed.Source())
	if err != nil {
		var resErr *ResolutionError
		if errors.As(err, &resErr) {
			return "", resErr.withValue(enclosing)
		}
		return "", err
	}
	return out, nil
}
