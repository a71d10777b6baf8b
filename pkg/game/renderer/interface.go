package renderer

import (
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleCorridor
	StyleStairs
	StyleWall
	StyleSubtle
	StyleSpawn
	StyleDenied
	StyleHeading
)

// Renderer defines the interface for dungeon viewers
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws the given Y layers of a dungeon.
	// A nil layers slice draws the layer holding the spawn point.
	RenderFrame(d *generator.Dungeon, layers []int)

	// SetCursor marks the inspected tile and centers the view on it
	SetCursor(c world.Coordinates)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders dungeon layers with the current renderer
func RenderFrame(d *generator.Dungeon, layers []int) {
	if Current != nil {
		Current.RenderFrame(d, layers)
	}
}

// SetCursor marks the inspected tile on the current renderer
func SetCursor(c world.Coordinates) {
	if Current != nil {
		Current.SetCursor(c)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 24, 80
}
