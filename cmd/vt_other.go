//go:build !windows

package main

// enableVT is a no-op on terminals that speak ANSI natively.
func enableVT() {}
