//go:build !windows

package main

// ANSI sequences work as-is outside Windows consoles.
func enableVT() {}
