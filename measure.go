package textinput

import (
	"github.com/rivo/uniseg"
)

// Measurer is the layout collaborator: it converts rune offsets within a
// laid-out string to pixel positions. Implementations wrap whatever text
// shaping the host rendering stack uses.
//
// MeasureToCursor may report ok=false when the host's layout has not caught
// up with the latest content (shaping often runs a frame behind the edit).
// The widget treats that as "try again next tick" rather than an error.
type Measurer interface {
	// MeasureToCursor returns the x offset in pixels of the insertion point
	// before the rune at runeIndex. runeIndex is clamped to [0, len].
	MeasureToCursor(text string, runeIndex int) (x float32, ok bool)
}

// MonoMeasurer measures text on a fixed-advance grid: every cell is
// CellWidth pixels wide and wide graphemes (CJK, emoji) take two cells.
// It is always ready, making it the default collaborator for headless use
// and tests.
type MonoMeasurer struct {
	// CellWidth is the pixel width of one cell. Zero means 1, i.e. measure
	// directly in cells.
	CellWidth float32
}

func (m MonoMeasurer) MeasureToCursor(text string, runeIndex int) (float32, bool) {
	cell := m.CellWidth
	if cell <= 0 {
		cell = 1
	}

	runes := []rune(text)
	if runeIndex < 0 {
		runeIndex = 0
	}
	if runeIndex > len(runes) {
		runeIndex = len(runes)
	}
	return cell * float32(uniseg.StringWidth(string(runes[:runeIndex]))), true
}
