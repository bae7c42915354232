// Package ui provides theme and color support for the application's user
// interface. It defines color schemes and ANSI escape helpers shared by the
// CLI and TUI presentation layers, so business logic never carries styling
// concerns.
package ui
