package placeholder

import (
	"fmt"
)

// PartType identifies the variant of a Part.
type PartType int

const (
	PartTypeText PartType = iota
	PartTypePlaceholder
)

// String returns a human-readable part type name.
func (t PartType) String() string {
	switch t {
	case PartTypeText:
		return PartNameText
	case PartTypePlaceholder:
		return PartNamePlaceholder
	default:
		return PartNameUnknown
	}
}

// Part is one segment of a parsed value: either literal text or a
// placeholder expression. The resolution engine switches exhaustively over
// the two variants; there is no open-ended subclassing point.
type Part interface {
	// Type returns the part variant tag.
	Type() PartType
	// String returns a human-readable representation for debugging.
	String() string
}

// TextPart is literal content emitted verbatim during resolution.
type TextPart struct {
	text string
}

// NewTextPart creates a literal text part.
func NewTextPart(text string) *TextPart {
	return &TextPart{text: text}
}

// Type returns PartTypeText.
func (p *TextPart) Type() PartType {
	return PartTypeText
}

// Text returns the literal content.
func (p *TextPart) Text() string {
	return p.text
}

// String returns a string representation.
func (p *TextPart) String() string {
	return fmt.Sprintf("TextPart{%q}", truncateForDisplay(p.text))
}

// PlaceholderPart is a prefix/suffix delimited expression naming a key to
// look up and, optionally, a default value to fall back to.
type PlaceholderPart struct {
	key      *ParsedValue
	fallback *ParsedValue // nil when no separator occurred in the body
	text     string       // processed body text, escapes stripped
	raw      string       // original source span, markers and escapes intact
	simple   bool         // true when the body contains no nested placeholder
}

// NewPlaceholderPart creates a placeholder part. fallback is nil when the
// body contained no separator; a non-nil fallback with no parts represents
// an explicitly empty default value.
func NewPlaceholderPart(key, fallback *ParsedValue, text, raw string) *PlaceholderPart {
	simple := !key.HasPlaceholders() && (fallback == nil || !fallback.HasPlaceholders())
	return &PlaceholderPart{
		key:      key,
		fallback: fallback,
		text:     text,
		raw:      raw,
		simple:   simple,
	}
}

// Type returns PartTypePlaceholder.
func (p *PlaceholderPart) Type() PartType {
	return PartTypePlaceholder
}

// Key returns the key expression. It may itself contain placeholder parts.
func (p *PlaceholderPart) Key() *ParsedValue {
	return p.key
}

// Default returns the default-value expression and whether one exists. An
// existing default with no parts resolves to the empty string, which is
// distinct from having no default at all.
func (p *PlaceholderPart) Default() (*ParsedValue, bool) {
	return p.fallback, p.fallback != nil
}

// Text returns the processed body text between the markers, with escape
// characters stripped.
func (p *PlaceholderPart) Text() string {
	return p.text
}

// Raw returns the original source span of the placeholder, markers and
// escape characters intact.
func (p *PlaceholderPart) Raw() string {
	return p.raw
}

// Simple reports whether the placeholder body contains no nested
// placeholder in either its key or default expression.
func (p *PlaceholderPart) Simple() bool {
	return p.simple
}

// String returns a string representation.
func (p *PlaceholderPart) String() string {
	if p.fallback != nil {
		return fmt.Sprintf("PlaceholderPart{key=%q, default=%q}", p.key.Source(), p.fallback.Source())
	}
	return fmt.Sprintf("PlaceholderPart{key=%q}", p.key.Source())
}

// ParsedValue is an ordered sequence of parts plus the original source text
// it was parsed from. Instances are immutable once built and may be resolved
// any number of times, against any number of resolvers, from any number of
// goroutines.
type ParsedValue struct {
	source string
	parts  []Part
}

// NewParsedValue creates a parsed value from its source text and parts.
func NewParsedValue(source string, parts []Part) *ParsedValue {
	return &ParsedValue{source: source, parts: parts}
}

// Source returns the original text this value was parsed from.
func (v *ParsedValue) Source() string {
	return v.source
}

// Parts returns the ordered segments of this value. The returned slice is
// shared; callers must not modify it.
func (v *ParsedValue) Parts() []Part {
	return v.parts
}

// HasPlaceholders reports whether any part is a placeholder.
func (v *ParsedValue) HasPlaceholders() bool {
	for _, part := range v.parts {
		if part.Type() == PartTypePlaceholder {
			return true
		}
	}
	return false
}

// Equal reports whether two parsed values were built from the same source
// text. Structural comparison by source is sufficient because parsing is
// deterministic for a fixed engine configuration.
func (v *ParsedValue) Equal(other *ParsedValue) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.source == other.source
}

// String returns the original source text.
func (v *ParsedValue) String() string {
	return v.source
}

// truncateForDisplay shortens long text for debug output.
func truncateForDisplay(text string) string {
	if len(text) > MaxStringDisplayLength {
		return text[:MaxStringDisplayLength] + TruncationSuffix
	}
	return text
}
