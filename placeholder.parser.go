package placeholder

import (
	"strings"

	"github.com/itsatony/go-placeholder/internal"
)

// parser assembles the part tree from the scanner's token stream.
//
// Nesting is handled by recursion: each placeholder consumes tokens up to
// its own matching suffix, and a prefix inside a body opens a nested
// placeholder. A placeholder whose suffix never arrives is abandoned as a
// structure and merged back into the surrounding text verbatim, using the
// raw token spans.
type parser struct {
	tokens []internal.Token
	pos    int
}

// parseParts consumes the whole stream at the top level. Stray suffix and
// separator markers outside any placeholder are literal text.
func (p *parser) parseParts() []Part {
	var parts []Part
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			parts = append(parts, NewTextPart(text.String()))
			text.Reset()
		}
	}

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if tok.Type != internal.TokenPrefix {
			text.WriteString(tok.Value)
			p.pos++
			continue
		}

		start := p.pos
		ph, ok := p.parsePlaceholder()
		if !ok {
			// Unterminated placeholder: everything from the prefix
			// occurrence to the end of the text is literal content.
			p.pos = start
			text.WriteString(p.rawSpan(p.pos, len(p.tokens)))
			p.pos = len(p.tokens)
			continue
		}
		flushText()
		parts = append(parts, ph)
	}
	flushText()

	return parts
}

// parsePlaceholder parses one placeholder starting at a prefix token. The
// first separator at this placeholder's own level splits the body into key
// and default expressions; later separator occurrences are literal. It
// reports ok=false when the stream ends before the matching suffix.
func (p *parser) parsePlaceholder() (*PlaceholderPart, bool) {
	start := p.pos
	p.pos++ // consume the prefix

	var (
		keyParts, defParts []Part
		keyText, defText   strings.Builder
		literal            strings.Builder
		separator          string
		inDefault          bool
	)
	curParts := &keyParts
	curText := &keyText

	flushLiteral := func() {
		if literal.Len() > 0 {
			*curParts = append(*curParts, NewTextPart(literal.String()))
			literal.Reset()
		}
	}

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Type {
		case internal.TokenText:
			literal.WriteString(tok.Value)
			curText.WriteString(tok.Value)
			p.pos++

		case internal.TokenSeparator:
			if inDefault {
				literal.WriteString(tok.Value)
				curText.WriteString(tok.Value)
			} else {
				flushLiteral()
				separator = tok.Value
				inDefault = true
				curParts = &defParts
				curText = &defText
			}
			p.pos++

		case internal.TokenPrefix:
			nested, ok := p.parsePlaceholder()
			if !ok {
				return nil, false
			}
			flushLiteral()
			*curParts = append(*curParts, nested)
			curText.WriteString(nested.Raw())

		case internal.TokenSuffix:
			p.pos++
			flushLiteral()

			key := NewParsedValue(keyText.String(), keyParts)
			bodyText := keyText.String()
			var fallback *ParsedValue
			if inDefault {
				fallback = NewParsedValue(defText.String(), defParts)
				bodyText = keyText.String() + separator + defText.String()
			}
			raw := p.rawSpan(start, p.pos)
			return NewPlaceholderPart(key, fallback, bodyText, raw), true
		}
	}

	// Ran out of tokens before the matching suffix.
	return nil, false
}

// rawSpan reconstructs the original source text covered by tokens[from:to].
func (p *parser) rawSpan(from, to int) string {
	var sb strings.Builder
	for _, tok := range p.tokens[from:to] {
		sb.WriteString(tok.Raw)
	}
	return sb.String()
}
