package pathkit

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var separatorInputs = []string{
	"",
	"plain",
	"a/b/c.txt",
	`a\b\c.txt`,
	`C:\Users\dev\file.txt`,
	`mixed/sep\path/file`,
	`\\server\share\x`,
	`trailing\`,
	`\`,
	`..\..\up.md`,
}

func TestSlashStrategy_Normalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a/b", "a/b"},
		{`a\b\c.txt`, "a/b/c.txt"},
		{`mixed/sep\path`, "mixed/sep/path"},
		{`\\server\share`, "//server/share"},
		{`C:\x`, "C:/x"},
	}

	for _, tt := range tests {
		got := SlashStrategy{}.Normalize(tt.input)
		if got != tt.expected {
			t.Errorf("SlashStrategy.Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPassthroughStrategy_IsIdentity(t *testing.T) {
	for _, input := range separatorInputs {
		assert.Equal(t, input, PassthroughStrategy{}.Normalize(input))
	}
}

func TestStrategies_Idempotent(t *testing.T) {
	for _, s := range []SeparatorStrategy{SlashStrategy{}, PassthroughStrategy{}, NativeStrategy()} {
		for _, input := range separatorInputs {
			once := s.Normalize(input)
			assert.Equal(t, once, s.Normalize(once), "%s strategy not idempotent for %q", s.Name(), input)
		}
	}
}

func TestNormalize_PlatformConditional(t *testing.T) {
	for _, input := range separatorInputs {
		got := Normalize(input)
		if runtime.GOOS == "darwin" {
			assert.NotContains(t, got, `\`, "Normalize(%q) on darwin", input)
		} else {
			assert.Equal(t, input, got, "Normalize(%q) should be identity on %s", input, runtime.GOOS)
		}
	}
}

func TestNativeStrategy(t *testing.T) {
	want := StrategyPassthrough
	if runtime.GOOS == "darwin" {
		want = StrategySlash
	}
	assert.Equal(t, want, NativeStrategy().Name())
}

func TestStrategyByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", NativeStrategy().Name()},
		{"auto", NativeStrategy().Name()},
		{"slash", StrategySlash},
		{" Slash ", StrategySlash},
		{"PASSTHROUGH", StrategyPassthrough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := StrategyByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.Name())
		})
	}
}

func TestStrategyByName_Unknown(t *testing.T) {
	_, err := StrategyByName("backslash")
	require.ErrorIs(t, err, ErrUnknownStrategy)
	assert.True(t, strings.Contains(err.Error(), `"backslash"`))
}

func BenchmarkSlashStrategy_NoBackslash(b *testing.B) {
	s := SlashStrategy{}
	for i := 0; i < b.N; i++ {
		s.Normalize("assets/textures/terrain/grass_01.png")
	}
}

func BenchmarkSlashStrategy_Backslashes(b *testing.B) {
	s := SlashStrategy{}
	for i := 0; i < b.N; i++ {
		s.Normalize(`assets\textures\terrain\grass_01.png`)
	}
}
