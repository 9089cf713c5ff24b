//go:build raylib

package main

// Register the raylib window backend
import _ "github.com/vovakirdan/tui-snake/internal/platform/raylib"
