package textinput

import "github.com/rparrett/simple-text-input/keymap"

// Pointer interaction: mapping click coordinates (local to the widget's
// top-left, in pixels) back to rune positions. Layout-not-ready answers
// leave the cursor where it was.

// CursorIndexAt returns the rune index nearest to the local point (x, y),
// accounting for padding and the current scroll offset.
func (t *TextInput) CursorIndexAt(x, y float32) int {
	display := t.buf.DisplayText()
	if display == "" {
		return 0
	}

	x -= t.padding[3]
	x += t.scrollX
	if x < 0 {
		x = 0
	}

	if !t.buf.Multiline() {
		lines := []WrappedLine{{Text: display, EndIndex: t.buf.Len()}}
		pos, ok := CursorIndexFromPosition(lines, 0, x, t.measurer)
		if !ok {
			return t.buf.Cursor()
		}
		return pos
	}

	y -= t.padding[0]
	y += t.scrollY

	lines, ok := WrapText(display, t.contentWidth(), t.measurer)
	if !ok {
		return t.buf.Cursor()
	}

	row := 0
	if lineH := t.lineHeight(); lineH > 0 {
		row = int(y / lineH)
	}
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	pos, ok := CursorIndexFromPosition(lines, row, x, t.measurer)
	if !ok {
		return t.buf.Cursor()
	}
	return pos
}

// ClickAt places the cursor at the clicked point. A shift-click extends the
// selection from the existing anchor instead.
func (t *TextInput) ClickAt(x, y float32, mods keymap.Modifiers) {
	if t.inactive {
		return
	}
	pos := t.CursorIndexAt(x, y)
	if mods.Shift() {
		t.buf.SetSelection(t.buf.anchor, pos)
	} else {
		t.buf.SetCursor(pos)
	}
	t.dirty |= DirtyCursor | DirtySelection
}

// DragTo extends the selection to the dragged point, keeping the anchor.
func (t *TextInput) DragTo(x, y float32) {
	if t.inactive {
		return
	}
	t.buf.SetSelection(t.buf.anchor, t.CursorIndexAt(x, y))
	t.dirty |= DirtyCursor | DirtySelection
}

// DoubleClickAt selects the word at the clicked point.
func (t *TextInput) DoubleClickAt(x, y float32) {
	if t.inactive {
		return
	}
	t.buf.SelectWordAt(t.CursorIndexAt(x, y))
	t.dirty |= DirtyCursor | DirtySelection
}

// TripleClickAt selects the clicked line (the whole buffer in single-line
// mode).
func (t *TextInput) TripleClickAt(x, y float32) {
	if t.inactive {
		return
	}
	t.buf.SelectLine(t.CursorIndexAt(x, y))
	t.dirty |= DirtyCursor | DirtySelection
}
