package pathkit

import (
	"fmt"
	"strings"
)

// Strategy names accepted by StrategyByName.
const (
	StrategyAuto        = "auto"
	StrategySlash       = "slash"
	StrategyPassthrough = "passthrough"
)

// SeparatorStrategy decides how directory separators in a raw path are
// rewritten before the path reaches the filesystem.
// Implementations must be pure, total and idempotent.
type SeparatorStrategy interface {
	// Normalize rewrites the separators of path.
	Normalize(path string) string

	// Name identifies the strategy in configuration and diagnostics.
	Name() string
}

// SlashStrategy rewrites every backslash to a forward slash.
type SlashStrategy struct{}

func (SlashStrategy) Normalize(path string) string {
	// Fast path: most inputs are already slash-separated
	if !strings.Contains(path, `\`) {
		return path
	}
	return strings.ReplaceAll(path, `\`, "/")
}

func (SlashStrategy) Name() string { return StrategySlash }

// PassthroughStrategy leaves paths byte-identical.
type PassthroughStrategy struct{}

func (PassthroughStrategy) Normalize(path string) string { return path }

func (PassthroughStrategy) Name() string { return StrategyPassthrough }

// NativeStrategy returns the strategy compiled in for the current GOOS:
// SlashStrategy on darwin, PassthroughStrategy everywhere else.
func NativeStrategy() SeparatorStrategy {
	return nativeStrategy
}

// StrategyByName resolves a configured strategy name.
// An empty name or "auto" selects NativeStrategy.
func StrategyByName(name string) (SeparatorStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyAuto:
		return NativeStrategy(), nil
	case StrategySlash:
		return SlashStrategy{}, nil
	case StrategyPassthrough:
		return PassthroughStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s, %s or %s)",
			ErrUnknownStrategy, name, StrategyAuto, StrategySlash, StrategyPassthrough)
	}
}
