package shortener

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{4, 6, 8, 12} {
		gen := NewCodeGenerator(length)

		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestGenerate_Alphabet(t *testing.T) {
	gen := NewCodeGenerator(6)

	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)

		for _, ch := range code {
			assert.True(t, strings.ContainsRune(Alphabet, ch),
				"code %q contains %q outside the alphabet", code, ch)
		}
	}
}

func TestGenerate_NoImmediateRepeats(t *testing.T) {
	gen := NewCodeGenerator(8)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %q after %d draws", code, i)
		seen[code] = true
	}
}

func TestNewCodeGenerator_ClampsLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"too short", 2, 6},
		{"too long", 50, 6},
		{"zero", 0, 6},
		{"minimum", 4, 4},
		{"maximum", 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewCodeGenerator(tt.length)
			assert.Equal(t, tt.want, gen.Length())
		})
	}
}
