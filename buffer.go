package textinput

import (
	"strings"
	"unicode"
)

// defaultMaxUndo bounds the undo stack when no explicit limit is set.
const defaultMaxUndo = 100

// undoState captures a snapshot of buffer state for undo/redo.
type undoState struct {
	content []rune
	cursor  int
	anchor  int
}

// Buffer is the editing model behind a text input: content, cursor,
// selection anchor and change history. All positions are rune (codepoint)
// indexes, never bytes. A Buffer belongs to exactly one widget and is
// mutated by at most one goroutine per frame, so it carries no locking.
type Buffer struct {
	// content holds the true text, even in masked mode.
	content []rune

	// cursor is an insertion point in [0, len(content)].
	cursor int

	// anchor is where the selection started. anchor == cursor means no
	// selection; the selected span is [min(anchor,cursor), max(anchor,cursor)).
	anchor int

	// Configuration
	multiline bool
	maxLength int // 0 = no limit
	readOnly  bool
	mask      rune // 0 = no masking

	charFilter func(r rune) bool
	validator  func(text string) bool
	onChange   func(text string)

	undoStack []undoState
	redoStack []undoState
	maxUndo   int // 0 = defaultMaxUndo
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{content: make([]rune, 0, 64)}
}

// Text returns the true text content, ignoring any mask.
func (b *Buffer) Text() string {
	return string(b.content)
}

// SetText replaces the content wholesale, as when the application overwrites
// the value from outside the event flow. The cursor moves to the end of the
// new text and any selection is dropped.
func (b *Buffer) SetText(text string) {
	b.content = []rune(text)
	b.cursor = len(b.content)
	b.anchor = b.cursor
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clearing the selection.
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clamp(pos)
	b.anchor = b.cursor
}

// Selection returns the ordered selection bounds (start <= end).
// Returns (cursor, cursor) when nothing is selected.
func (b *Buffer) Selection() (start, end int) {
	if b.anchor < b.cursor {
		return b.anchor, b.cursor
	}
	return b.cursor, b.anchor
}

// HasSelection reports whether any text is selected.
func (b *Buffer) HasSelection() bool {
	return b.anchor != b.cursor
}

// SelectedText returns the selected span of the true content.
func (b *Buffer) SelectedText() string {
	start, end := b.Selection()
	return string(b.content[start:end])
}

// SelectAll selects the whole buffer.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.cursor = len(b.content)
}

// SelectWordAt selects the whitespace-delimited word around pos.
func (b *Buffer) SelectWordAt(pos int) {
	pos = b.clamp(pos)
	start, end := pos, pos
	for start > 0 && !unicode.IsSpace(b.content[start-1]) {
		start--
	}
	for end < len(b.content) && !unicode.IsSpace(b.content[end]) {
		end++
	}
	b.anchor = start
	b.cursor = end
}

// SelectLine selects the line containing pos, including its trailing
// newline. A single-line buffer selects everything.
func (b *Buffer) SelectLine(pos int) {
	if !b.multiline {
		b.SelectAll()
		return
	}
	pos = b.clamp(pos)
	end := b.lineEnd(pos)
	if end < len(b.content) && b.content[end] == '\n' {
		end++
	}
	b.anchor = b.lineStart(pos)
	b.cursor = end
}

// SetSelection sets anchor and cursor explicitly, both clamped.
func (b *Buffer) SetSelection(anchor, cursor int) {
	b.anchor = b.clamp(anchor)
	b.cursor = b.clamp(cursor)
}

// ClearSelection collapses the selection onto the cursor.
func (b *Buffer) ClearSelection() {
	b.anchor = b.cursor
}

// Insert inserts text at the cursor, replacing the selection if one exists.
// Newlines are stripped in single-line mode, the char filter and max length
// are applied, and the cursor lands after the inserted text.
func (b *Buffer) Insert(text string) {
	if b.readOnly {
		return
	}

	if !b.multiline {
		text = strings.ReplaceAll(text, "\r", "")
		text = strings.ReplaceAll(text, "\n", "")
	}

	runes := []rune(text)
	if b.charFilter != nil {
		filtered := runes[:0:len(runes)]
		for _, r := range runes {
			if b.charFilter(r) {
				filtered = append(filtered, r)
			}
		}
		runes = filtered
	}

	if b.maxLength > 0 {
		start, end := b.Selection()
		available := b.maxLength - (len(b.content) - (end - start))
		if available < 0 {
			available = 0
		}
		if len(runes) > available {
			runes = runes[:available]
		}
	}

	if len(runes) == 0 && !b.HasSelection() {
		return
	}

	b.saveUndo()
	b.deleteSelection()

	next := make([]rune, 0, len(b.content)+len(runes))
	next = append(next, b.content[:b.cursor]...)
	next = append(next, runes...)
	next = append(next, b.content[b.cursor:]...)
	b.content = next

	b.cursor += len(runes)
	b.anchor = b.cursor
	b.notify()
}

// Delete removes runes around the cursor: count > 0 deletes forward,
// count < 0 deletes backward, count == 0 deletes only the selection.
// With an active selection the selection is removed regardless of count.
// Deleting backward at position 0 and forward at the end are no-ops.
func (b *Buffer) Delete(count int) {
	if b.readOnly {
		return
	}

	if b.HasSelection() {
		b.saveUndo()
		b.deleteSelection()
		b.notify()
		return
	}
	if count == 0 {
		return
	}

	if count > 0 {
		end := b.clamp(b.cursor + count)
		if end == b.cursor {
			return
		}
		b.saveUndo()
		b.content = append(b.content[:b.cursor], b.content[end:]...)
	} else {
		start := b.clamp(b.cursor + count)
		if start == b.cursor {
			return
		}
		b.saveUndo()
		b.content = append(b.content[:start], b.content[b.cursor:]...)
		b.cursor = start
		b.anchor = start
	}
	b.notify()
}

// DeleteWord deletes to the next word boundary: forward deletes through the
// next word, backward through the previous one. An active selection is
// removed instead.
func (b *Buffer) DeleteWord(forward bool) {
	if b.readOnly {
		return
	}

	if b.HasSelection() {
		b.saveUndo()
		b.deleteSelection()
		b.notify()
		return
	}

	if forward {
		end := b.wordEnd(b.cursor)
		if end == b.cursor {
			return
		}
		b.saveUndo()
		b.content = append(b.content[:b.cursor], b.content[end:]...)
	} else {
		start := b.wordStart(b.cursor)
		if start == b.cursor {
			return
		}
		b.saveUndo()
		b.content = append(b.content[:start], b.content[b.cursor:]...)
		b.cursor = start
		b.anchor = start
	}
	b.notify()
}

// MoveCursor moves the cursor by delta runes, saturating at the buffer
// bounds. With extend the anchor stays put and the selection grows; without
// it an existing selection collapses to its edge in the motion direction.
func (b *Buffer) MoveCursor(delta int, extend bool) {
	if !extend && b.HasSelection() {
		start, end := b.Selection()
		if delta < 0 {
			b.cursor = start
		} else {
			b.cursor = end
		}
		b.anchor = b.cursor
		return
	}

	b.cursor = b.clamp(b.cursor + delta)
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveWord moves the cursor to the next or previous whitespace-delimited
// word boundary, clamped at the buffer ends.
func (b *Buffer) MoveWord(forward, extend bool) {
	if forward {
		b.cursor = b.wordEnd(b.cursor)
	} else {
		b.cursor = b.wordStart(b.cursor)
	}
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveToLineStart moves the cursor to the start of the current line.
func (b *Buffer) MoveToLineStart(extend bool) {
	b.cursor = b.lineStart(b.cursor)
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveToLineEnd moves the cursor to the end of the current line.
func (b *Buffer) MoveToLineEnd(extend bool) {
	b.cursor = b.lineEnd(b.cursor)
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveToStart moves the cursor to the start of the buffer.
func (b *Buffer) MoveToStart(extend bool) {
	b.cursor = 0
	if !extend {
		b.anchor = 0
	}
}

// MoveToEnd moves the cursor to the end of the buffer.
func (b *Buffer) MoveToEnd(extend bool) {
	b.cursor = len(b.content)
	if !extend {
		b.anchor = b.cursor
	}
}

// SetMultiline enables or disables newline content.
func (b *Buffer) SetMultiline(multiline bool) {
	b.multiline = multiline
}

// Multiline reports whether newline content is allowed.
func (b *Buffer) Multiline() bool {
	return b.multiline
}

// SetMaxLength limits the content length in runes (0 = no limit).
func (b *Buffer) SetMaxLength(max int) {
	b.maxLength = max
}

// SetReadOnly prevents editing while still allowing selection and copy.
func (b *Buffer) SetReadOnly(readOnly bool) {
	b.readOnly = readOnly
}

// ReadOnly reports whether editing is disabled.
func (b *Buffer) ReadOnly() bool {
	return b.readOnly
}

// SetMask sets the mask rune substituted for every codepoint in the
// displayed projection (0 disables masking). The true content is only ever
// stored here; the projection is computed fresh on every DisplayText call.
func (b *Buffer) SetMask(mask rune) {
	b.mask = mask
}

// Masked reports whether a mask rune is configured.
func (b *Buffer) Masked() bool {
	return b.mask != 0
}

// DisplayText returns the externally visible representation: the content
// itself, or every codepoint replaced by the mask rune.
func (b *Buffer) DisplayText() string {
	if b.mask == 0 {
		return string(b.content)
	}
	masked := make([]rune, len(b.content))
	for i := range masked {
		masked[i] = b.mask
	}
	return string(masked)
}

// SetCharFilter restricts insertable runes; the filter returns true to
// allow a rune.
func (b *Buffer) SetCharFilter(fn func(r rune) bool) {
	b.charFilter = fn
}

// SetValidator sets a whole-text validation hook checked by Valid.
func (b *Buffer) SetValidator(fn func(text string) bool) {
	b.validator = fn
}

// Valid reports whether the content passes the validator (true when none is
// set).
func (b *Buffer) Valid() bool {
	if b.validator == nil {
		return true
	}
	return b.validator(string(b.content))
}

// OnChange sets a callback invoked synchronously after every content
// mutation.
func (b *Buffer) OnChange(fn func(text string)) {
	b.onChange = fn
}

// SetMaxUndo bounds the undo stack depth (0 = default).
func (b *Buffer) SetMaxUndo(max int) {
	b.maxUndo = max
}

// Undo reverts the most recent change. Returns false when the history is
// empty.
func (b *Buffer) Undo() bool {
	if len(b.undoStack) == 0 {
		return false
	}
	b.redoStack = append(b.redoStack, b.snapshot())
	b.restore(b.undoStack[len(b.undoStack)-1])
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.notify()
	return true
}

// Redo reapplies the most recently undone change. Returns false when there
// is nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.redoStack) == 0 {
		return false
	}
	b.undoStack = append(b.undoStack, b.snapshot())
	b.restore(b.redoStack[len(b.redoStack)-1])
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.notify()
	return true
}

// deleteSelection removes the selected span, leaving the cursor at its
// start. No-op without a selection.
func (b *Buffer) deleteSelection() {
	start, end := b.Selection()
	if start == end {
		return
	}
	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	b.anchor = start
}

// saveUndo pushes the current state onto the undo stack; one snapshot per
// mutating action. Any pending redo history is invalidated.
func (b *Buffer) saveUndo() {
	max := b.maxUndo
	if max == 0 {
		max = defaultMaxUndo
	}

	b.undoStack = append(b.undoStack, b.snapshot())
	if len(b.undoStack) > max {
		b.undoStack = b.undoStack[1:]
	}
	b.redoStack = nil
}

func (b *Buffer) snapshot() undoState {
	state := undoState{
		content: make([]rune, len(b.content)),
		cursor:  b.cursor,
		anchor:  b.anchor,
	}
	copy(state.content, b.content)
	return state
}

func (b *Buffer) restore(state undoState) {
	b.content = make([]rune, len(state.content))
	copy(b.content, state.content)
	b.cursor = state.cursor
	b.anchor = state.anchor
}

func (b *Buffer) notify() {
	if b.onChange != nil {
		b.onChange(string(b.content))
	}
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

// wordStart scans left over whitespace, then over the word, to the
// position before the previous word. Clamps to 0.
func (b *Buffer) wordStart(pos int) int {
	for pos > 0 && unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	return pos
}

// wordEnd scans right over the current word, then over whitespace, landing
// at the start of the next word. Clamps to len.
func (b *Buffer) wordEnd(pos int) int {
	length := len(b.content)
	for pos < length && !unicode.IsSpace(b.content[pos]) {
		pos++
	}
	for pos < length && unicode.IsSpace(b.content[pos]) {
		pos++
	}
	return pos
}

func (b *Buffer) lineStart(pos int) int {
	for pos > 0 && b.content[pos-1] != '\n' {
		pos--
	}
	return pos
}

func (b *Buffer) lineEnd(pos int) int {
	for pos < len(b.content) && b.content[pos] != '\n' {
		pos++
	}
	return pos
}
