package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Defaults(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	require.NotNil(t, engine)

	parsed := engine.Parse("${key:fallback}")
	ph := mustPlaceholder(t, parsed.Parts()[0])
	assert.Equal(t, "key", ph.Key().Source())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantMsg string
	}{
		{
			name:    "empty prefix",
			opts:    []Option{WithMarkers("", "}")},
			wantMsg: ErrMsgEmptyPrefix,
		},
		{
			name:    "empty suffix",
			opts:    []Option{WithMarkers("${", "")},
			wantMsg: ErrMsgEmptySuffix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := New(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, engine)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMustNew_PanicsOnInvalidConfig(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(WithMarkers("", ""))
	})
}

func TestNew_WithLogger(t *testing.T) {
	engine, err := New(WithLogger(zap.NewNop()))
	require.NoError(t, err)

	out, err := engine.ReplacePlaceholders("${k}", MapResolver{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "v", out)
}

func TestResolve_InputValidation(t *testing.T) {
	engine := MustNew()

	t.Run("nil parsed value", func(t *testing.T) {
		_, err := engine.Resolve(nil, MapResolver{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilParsedValue)
	})

	t.Run("nil resolver", func(t *testing.T) {
		_, err := engine.Resolve(engine.Parse("x"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilResolver)
	})
}

func TestEngine_MarkerOptions(t *testing.T) {
	t.Run("multi-byte suffix", func(t *testing.T) {
		engine := MustNew(WithMarkers("%{", "}%"))

		out, err := engine.ReplacePlaceholders("%{k}%", MapResolver{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, "v", out)
	})

	t.Run("default markers pass through custom ones", func(t *testing.T) {
		engine := MustNew(WithMarkers("%{", "}%"))

		out, err := engine.ReplacePlaceholders("${k}", MapResolver{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, "${k}", out)
	})

	t.Run("custom escape", func(t *testing.T) {
		engine := MustNew(WithEscape('~'))

		out, err := engine.ReplacePlaceholders("~${k}", MapResolver{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, "${k}", out)
	})

	t.Run("without escape the escape char is literal", func(t *testing.T) {
		engine := MustNew(WithoutEscape())

		out, err := engine.ReplacePlaceholders(`\${k}`, MapResolver{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, `\v`, out)
	})
}
