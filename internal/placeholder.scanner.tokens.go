package internal

// TokenType identifies the kind of a scanned token.
type TokenType int

const (
	TokenText TokenType = iota
	TokenPrefix
	TokenSuffix
	TokenSeparator
)

// String returns a human-readable token type name.
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return TokenNameText
	case TokenPrefix:
		return TokenNamePrefix
	case TokenSuffix:
		return TokenNameSuffix
	case TokenSeparator:
		return TokenNameSeparator
	default:
		return TokenNameUnknown
	}
}

// Token is a single lexical unit of a scanned value.
//
// Value carries the processed text: for text tokens, escape characters have
// been stripped; for marker tokens, it is the marker literal. Raw carries the
// original source bytes of the token, escapes intact, so that callers can
// reconstruct any span of the input exactly.
type Token struct {
	Type  TokenType
	Value string
	Raw   string
	Pos   int // byte offset into the source
}

// NewTextToken creates a text token.
func NewTextToken(value, raw string, pos int) Token {
	return Token{Type: TokenText, Value: value, Raw: raw, Pos: pos}
}

// NewMarkerToken creates a prefix, suffix, or separator token for the given
// marker literal.
func NewMarkerToken(tokenType TokenType, marker string, pos int) Token {
	return Token{Type: tokenType, Value: marker, Raw: marker, Pos: pos}
}
