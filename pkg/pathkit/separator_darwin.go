//go:build darwin

package pathkit

// Backslash is a legal filename byte on darwin, so it is rewritten explicitly.
var nativeStrategy SeparatorStrategy = SlashStrategy{}
