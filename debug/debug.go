//go:build !debug

// Package debug exposes the build-time debug flag consulted by the logger.
package debug

// Debug is true when the binary is built with the "debug" tag.
const Debug = false
