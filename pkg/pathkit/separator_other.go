//go:build !darwin

package pathkit

var nativeStrategy SeparatorStrategy = PassthroughStrategy{}
