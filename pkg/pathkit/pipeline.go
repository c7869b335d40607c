package pathkit

// Pipeline composes the two stages every path goes through: separator
// normalization followed by conversion to a PlatformPath.
// The zero value uses NativeStrategy. Pipeline is immutable and safe for
// concurrent use.
type Pipeline struct {
	strategy SeparatorStrategy
}

// NewPipeline creates a pipeline using strategy. A nil strategy selects
// NativeStrategy.
func NewPipeline(strategy SeparatorStrategy) Pipeline {
	return Pipeline{strategy: strategy}
}

// Strategy returns the separator strategy in effect.
func (p Pipeline) Strategy() SeparatorStrategy {
	if p.strategy == nil {
		return nativeStrategy
	}
	return p.strategy
}

// Normalize rewrites separators according to the pipeline's strategy.
func (p Pipeline) Normalize(raw string) string {
	return p.Strategy().Normalize(raw)
}

// ToPlatformPath wraps an already normalized path. No characters are rewritten.
func (p Pipeline) ToPlatformPath(normalized string) PlatformPath {
	return PlatformPath{path: normalized}
}

// Resolve runs both stages in order. Every query and mutation in this
// package obtains its PlatformPath through Resolve.
func (p Pipeline) Resolve(raw string) PlatformPath {
	return p.ToPlatformPath(p.Normalize(raw))
}

// Normalize rewrites the separators of path using NativeStrategy.
func Normalize(path string) string {
	return Pipeline{}.Normalize(path)
}

// ToPlatformPath wraps a normalized path in a PlatformPath.
func ToPlatformPath(path string) PlatformPath {
	return Pipeline{}.ToPlatformPath(path)
}
