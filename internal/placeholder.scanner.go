package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Markers holds the delimiter configuration for one scan.
type Markers struct {
	Prefix    string // placeholder start marker, e.g. "${"
	Suffix    string // placeholder end marker, e.g. "}"
	Separator string // default-value separator, e.g. ":"; empty disables it
	Escape    byte   // escape character, honored only when HasEscape is set
	HasEscape bool
}

// Scanner splits a raw value into text and marker tokens.
//
// The scanner is context-free: it does not track placeholder nesting or
// balance. It only decides, byte by byte, whether the input at the cursor is
// an escape sequence, a marker, or literal text. Structural interpretation
// (nesting, key/default splitting, unterminated recovery) is the parser's
// job.
type Scanner struct {
	source  string
	markers Markers
	pos     int
	logger  *zap.Logger
}

// NewScanner creates a scanner for the given source and marker set.
func NewScanner(source string, markers Markers, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSourceLen, len(source)))
	return &Scanner{
		source:  source,
		markers: markers,
		logger:  logger,
	}
}

// Scan tokenizes the whole source. It cannot fail: every byte of the input
// ends up in exactly one token, and concatenating the Raw fields of the
// result reproduces the source verbatim.
//
// An escape character immediately before a prefix, suffix, or separator
// marker neutralizes that marker: the marker text joins the surrounding
// literal run and the escape character is consumed. An escape character in
// any other position is literal.
func (s *Scanner) Scan() []Token {
	s.logger.Debug(LogMsgScanStart)
	var tokens []Token

	var value strings.Builder
	rawStart := s.pos

	flushText := func() {
		if s.pos > rawStart {
			tokens = append(tokens, NewTextToken(value.String(), s.source[rawStart:s.pos], rawStart))
			value.Reset()
		}
	}

	for s.pos < len(s.source) {
		if s.markers.HasEscape && s.source[s.pos] == s.markers.Escape {
			if marker, ok := s.escapedMarker(); ok {
				value.WriteString(marker)
				s.pos += 1 + len(marker)
				continue
			}
			// Escape character without a following marker is literal.
			value.WriteByte(s.markers.Escape)
			s.pos++
			continue
		}

		if marker, tokenType, ok := s.markerAt(); ok {
			flushText()
			tokens = append(tokens, NewMarkerToken(tokenType, marker, s.pos))
			s.pos += len(marker)
			rawStart = s.pos
			continue
		}

		value.WriteByte(s.source[s.pos])
		s.pos++
	}
	flushText()

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens
}

// markerAt reports which marker, if any, starts at the cursor. Prefix wins
// over suffix, suffix over separator, for marker sets that overlap.
func (s *Scanner) markerAt() (string, TokenType, bool) {
	rest := s.source[s.pos:]
	switch {
	case strings.HasPrefix(rest, s.markers.Prefix):
		return s.markers.Prefix, TokenPrefix, true
	case strings.HasPrefix(rest, s.markers.Suffix):
		return s.markers.Suffix, TokenSuffix, true
	case s.markers.Separator != "" && strings.HasPrefix(rest, s.markers.Separator):
		return s.markers.Separator, TokenSeparator, true
	default:
		return "", 0, false
	}
}

// escapedMarker reports the marker immediately following the escape
// character at the cursor, if any.
func (s *Scanner) escapedMarker() (string, bool) {
	rest := s.source[s.pos+1:]
	switch {
	case strings.HasPrefix(rest, s.markers.Prefix):
		return s.markers.Prefix, true
	case strings.HasPrefix(rest, s.markers.Suffix):
		return s.markers.Suffix, true
	case s.markers.Separator != "" && strings.HasPrefix(rest, s.markers.Separator):
		return s.markers.Separator, true
	default:
		return "", false
	}
}
