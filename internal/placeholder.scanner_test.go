package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func defaultMarkers() Markers {
	return Markers{
		Prefix:    "${",
		Suffix:    "}",
		Separator: ":",
		Escape:    '\\',
		HasEscape: true,
	}
}

func TestScanner_Scan_PlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:  "simple text",
			input: "Hello, world!",
			expected: []Token{
				{Type: TokenText, Value: "Hello, world!", Raw: "Hello, world!", Pos: 0},
			},
		},
		{
			name:  "multiline text",
			input: "line 1\nline 2",
			expected: []Token{
				{Type: TokenText, Value: "line 1\nline 2", Raw: "line 1\nline 2", Pos: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewScanner(tt.input, defaultMarkers(), zap.NewNop())
			tokens := scanner.Scan()
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestScanner_Scan_Markers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "single placeholder",
			input: "${key}",
			expected: []Token{
				{Type: TokenPrefix, Value: "${", Raw: "${", Pos: 0},
				{Type: TokenText, Value: "key", Raw: "key", Pos: 2},
				{Type: TokenSuffix, Value: "}", Raw: "}", Pos: 5},
			},
		},
		{
			name:  "placeholder with default separator",
			input: "${key:fallback}",
			expected: []Token{
				{Type: TokenPrefix, Value: "${", Raw: "${", Pos: 0},
				{Type: TokenText, Value: "key", Raw: "key", Pos: 2},
				{Type: TokenSeparator, Value: ":", Raw: ":", Pos: 5},
				{Type: TokenText, Value: "fallback", Raw: "fallback", Pos: 6},
				{Type: TokenSuffix, Value: "}", Raw: "}", Pos: 14},
			},
		},
		{
			name:  "surrounding text",
			input: "a${b}c",
			expected: []Token{
				{Type: TokenText, Value: "a", Raw: "a", Pos: 0},
				{Type: TokenPrefix, Value: "${", Raw: "${", Pos: 1},
				{Type: TokenText, Value: "b", Raw: "b", Pos: 3},
				{Type: TokenSuffix, Value: "}", Raw: "}", Pos: 4},
				{Type: TokenText, Value: "c", Raw: "c", Pos: 5},
			},
		},
		{
			name:  "stray suffix and separator",
			input: "a}b:c",
			expected: []Token{
				{Type: TokenText, Value: "a", Raw: "a", Pos: 0},
				{Type: TokenSuffix, Value: "}", Raw: "}", Pos: 1},
				{Type: TokenText, Value: "b", Raw: "b", Pos: 2},
				{Type: TokenSeparator, Value: ":", Raw: ":", Pos: 3},
				{Type: TokenText, Value: "c", Raw: "c", Pos: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewScanner(tt.input, defaultMarkers(), zap.NewNop())
			tokens := scanner.Scan()
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestScanner_Scan_Escapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "escaped prefix",
			input: `\${x}`,
			expected: []Token{
				{Type: TokenText, Value: "${x", Raw: `\${x`, Pos: 0},
				{Type: TokenSuffix, Value: "}", Raw: "}", Pos: 4},
			},
		},
		{
			name:  "escaped suffix inside body",
			input: `${a\}b}`,
			expected: []Token{
				{Type: TokenPrefix, Value: "${", Raw: "${", Pos: 0},
				{Type: TokenText, Value: "a}b", Raw: `a\}b`, Pos: 2},
				{Type: TokenSuffix, Value: "}", Raw: "}", Pos: 6},
			},
		},
		{
			name:  "escaped separator inside body",
			input: `${a\:b}`,
			expected: []Token{
				{Type: TokenPrefix, Value: "${", Raw: "${", Pos: 0},
				{Type: TokenText, Value: "a:b", Raw: `a\:b`, Pos: 2},
				{Type: TokenSuffix, Value: "}", Raw: "}", Pos: 6},
			},
		},
		{
			name:  "escape without marker is literal",
			input: `a\b`,
			expected: []Token{
				{Type: TokenText, Value: `a\b`, Raw: `a\b`, Pos: 0},
			},
		},
		{
			name:  "escape at end of input",
			input: `a\`,
			expected: []Token{
				{Type: TokenText, Value: `a\`, Raw: `a\`, Pos: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewScanner(tt.input, defaultMarkers(), zap.NewNop())
			tokens := scanner.Scan()
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestScanner_Scan_NoEscapeConfigured(t *testing.T) {
	markers := defaultMarkers()
	markers.HasEscape = false

	scanner := NewScanner(`\${x}`, markers, zap.NewNop())
	tokens := scanner.Scan()

	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Type: TokenText, Value: `\`, Raw: `\`, Pos: 0}, tokens[0])
	assert.Equal(t, TokenPrefix, tokens[1].Type)
}

func TestScanner_Scan_NoSeparatorConfigured(t *testing.T) {
	markers := defaultMarkers()
	markers.Separator = ""

	scanner := NewScanner("${key:fallback}", markers, zap.NewNop())
	tokens := scanner.Scan()

	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Type: TokenText, Value: "key:fallback", Raw: "key:fallback", Pos: 2}, tokens[1])
}

func TestScanner_Scan_CustomMarkers(t *testing.T) {
	markers := Markers{
		Prefix:    "%{",
		Suffix:    "}%",
		Separator: "|",
		Escape:    '~',
		HasEscape: true,
	}

	scanner := NewScanner("a%{key|def}%b~%{c", markers, zap.NewNop())
	tokens := scanner.Scan()

	expected := []Token{
		{Type: TokenText, Value: "a", Raw: "a", Pos: 0},
		{Type: TokenPrefix, Value: "%{", Raw: "%{", Pos: 1},
		{Type: TokenText, Value: "key", Raw: "key", Pos: 3},
		{Type: TokenSeparator, Value: "|", Raw: "|", Pos: 6},
		{Type: TokenText, Value: "def", Raw: "def", Pos: 7},
		{Type: TokenSuffix, Value: "}%", Raw: "}%", Pos: 10},
		{Type: TokenText, Value: "b%{c", Raw: "b~%{c", Pos: 12},
	}
	assert.Equal(t, expected, tokens)
}

// Concatenating Raw fields must reproduce the source exactly, for any input.
func TestScanner_Scan_RawRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"${a}",
		"${a:b}",
		`\${a}`,
		`${a\:b\}c}`,
		"test${of${with${and${",
		"${${inner}}",
		"a}b${c",
		`trailing\`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			scanner := NewScanner(input, defaultMarkers(), zap.NewNop())
			tokens := scanner.Scan()

			var sb strings.Builder
			for _, tok := range tokens {
				sb.WriteString(tok.Raw)
			}
			assert.Equal(t, input, sb.String())
		})
	}
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "Text", TokenText.String())
	assert.Equal(t, "Prefix", TokenPrefix.String())
	assert.Equal(t, "Suffix", TokenSuffix.String())
	assert.Equal(t, "Separator", TokenSeparator.String())
	assert.Equal(t, "Unknown", TokenType(99).String())
}
