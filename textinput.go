package textinput

import (
	"runtime"
	"time"
	"unicode"

	"github.com/rparrett/simple-text-input/keymap"
)

// ============================================================================
// Dirty Tracking
// ============================================================================

// Dirty tells the render collaborator what changed during a tick.
type Dirty uint8

const (
	DirtyText      Dirty = 1 << iota // visible text changed
	DirtyCursor                      // cursor offset or visibility changed
	DirtySelection                   // selection range changed
	DirtyScroll                      // scroll offset changed
)

// ============================================================================
// Submit Sink
// ============================================================================

// SubmitEvent is emitted once per activation of the submit action.
type SubmitEvent struct {
	// ID identifies the originating widget.
	ID string
	// Value is the buffer content at the time of submission.
	Value string
}

// ============================================================================
// Options
// ============================================================================

// Options configures a new TextInput. The zero value is a usable
// single-line input with platform default bindings.
type Options struct {
	// ID identifies the widget in SubmitEvents.
	ID string

	// Value is the starting text; the cursor starts at its end.
	Value string

	// Placeholder is shown (with its own style) while the input is empty
	// and inactive.
	Placeholder string

	// Multiline allows newline content. Single-line inputs strip newlines
	// from all inserted text.
	Multiline bool

	// SubmitOnEnter makes plain Enter submit even in multiline mode, with
	// Shift+Enter inserting the newline. Ignored for single-line inputs,
	// which always submit on Enter.
	SubmitOnEnter bool

	// RetainOnSubmit keeps the buffer content after a submit instead of
	// clearing it.
	RetainOnSubmit bool

	// Mask, when nonzero, substitutes every displayed codepoint (password
	// fields). The buffer itself always holds the true content.
	Mask rune

	// MaxLength limits content length in runes (0 = no limit).
	MaxLength int

	// ReadOnly allows selection and copy but no edits.
	ReadOnly bool

	// Inactive starts the widget ignoring input with the cursor hidden.
	Inactive bool

	// Bindings overrides the navigation table. Nil selects the platform
	// default (Super/Alt table on macOS, Control table elsewhere).
	Bindings []keymap.Binding

	// BlinkInterval overrides the cursor blink rate (0 = BlinkInterval).
	BlinkInterval time.Duration

	// Measurer overrides the layout collaborator (nil = MonoMeasurer).
	Measurer Measurer

	// Clipboard overrides the clipboard collaborator (nil = the OS
	// clipboard).
	Clipboard Clipboard

	// QueueLimit bounds the per-frame event queue (0 = 256).
	QueueLimit int
}

// ============================================================================
// TextInput Widget
// ============================================================================

const (
	// defaultScrollMargin keeps the cursor this many pixels away from the
	// horizontal viewport edges before scrolling kicks in.
	defaultScrollMargin = 8

	// defaultScrollPadding pads the cursor line from the vertical viewport
	// edges in multiline mode.
	defaultScrollPadding = 4
)

// TextInput is a retained-mode text input widget: an editing buffer plus the
// per-frame machinery around it (event queue, blink timer, scroll state,
// IME composition, submit notification). One goroutine owns a TextInput;
// events may be pushed from the same goroutine at any time and take effect
// on the next Tick.
type TextInput struct {
	id  string
	buf *Buffer

	bindings []keymap.Binding
	queue    *eventQueue

	inactive      bool
	submitOnEnter bool
	retain        bool

	// IME composition, displayed at the cursor but never stored in buf.
	preedit       []rune
	preeditCursor int

	placeholder      string
	style            TextStyle
	placeholderStyle TextStyle

	blink cursorTimer

	measurer  Measurer
	clipboard Clipboard

	onSubmit func(SubmitEvent)
	onChange func(text string)

	// Viewport geometry: outer size and padding {top, right, bottom, left}.
	width, height float32
	padding       [4]float32

	scrollX, scrollY float32
	scrollMargin     float32
	scrollPadding    float32

	// scrollPending marks a scroll recompute deferred because the measurer
	// had no layout answer yet; retried on the following tick.
	scrollPending bool

	dirty Dirty
}

// New creates a text input widget.
func New(opts Options) *TextInput {
	buf := NewBuffer()
	buf.SetMultiline(opts.Multiline)
	buf.SetMaxLength(opts.MaxLength)
	buf.SetReadOnly(opts.ReadOnly)
	buf.SetMask(opts.Mask)
	if opts.Value != "" {
		buf.SetText(opts.Value)
	}

	bindings := opts.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}

	measurer := opts.Measurer
	if measurer == nil {
		measurer = MonoMeasurer{}
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}

	style := DefaultTextStyle()

	return &TextInput{
		id:               opts.ID,
		buf:              buf,
		bindings:         bindings,
		queue:            newEventQueue(opts.QueueLimit),
		inactive:         opts.Inactive,
		submitOnEnter:    opts.SubmitOnEnter,
		retain:           opts.RetainOnSubmit,
		placeholder:      opts.Placeholder,
		style:            style,
		placeholderStyle: DefaultPlaceholderStyle(style),
		blink:            newCursorTimer(opts.BlinkInterval),
		measurer:         measurer,
		clipboard:        clip,
		scrollMargin:     defaultScrollMargin,
		scrollPadding:    defaultScrollPadding,
	}
}

// DefaultBindings returns the navigation table for the current platform:
// the Super/Alt-based table on macOS, the Control-based table elsewhere.
func DefaultBindings() []keymap.Binding {
	if runtime.GOOS == "darwin" {
		return keymap.DefaultBindingsMacOS()
	}
	return keymap.DefaultBindings()
}

// ============================================================================
// Frame Tick
// ============================================================================

// Push queues an input event for the next tick. Events are applied in
// arrival order; past the queue limit the oldest records are dropped.
func (t *TextInput) Push(e Event) {
	t.queue.push(e)
}

// PushKey queues a key press.
func (t *TextInput) PushKey(key keymap.Key, r rune, mods keymap.Modifiers) {
	t.queue.push(KeyEvent{Key: key, Rune: r, Modifiers: mods})
}

// PushText queues each rune of s as a typed character.
func (t *TextInput) PushText(s string) {
	for _, r := range s {
		t.queue.push(KeyEvent{Rune: r})
	}
}

// Tick drains and applies the queued event batch, recomputes the scroll
// offset, and advances the cursor blink. Call once per frame. The returned
// flags tell the render collaborator what to redraw; buffer and cursor
// values are only stable once Tick returns.
//
// While the widget is inactive the batch is still drained, but discarded,
// so stale input never applies after reactivation.
func (t *TextInput) Tick(now time.Time) Dirty {
	before := t.buf.Text()

	t.queue.drain(func(e Event) {
		if t.inactive {
			return
		}
		t.handleEvent(e)
	})

	if t.onChange != nil {
		if after := t.buf.Text(); after != before {
			t.onChange(after)
		}
	}

	// Cursor-reposition math depends on the final text layout, so it runs
	// after the whole batch, never per keystroke.
	if t.dirty&(DirtyText|DirtyCursor) != 0 {
		t.scrollPending = true
	}
	if t.scrollPending {
		t.updateScroll()
	}

	if t.dirty != 0 {
		t.blink.reset(now)
	} else if !t.inactive && t.blink.update(now) {
		t.dirty |= DirtyCursor
	}

	d := t.dirty
	t.dirty = 0
	return d
}

func (t *TextInput) handleEvent(e Event) {
	switch ev := e.(type) {
	case KeyEvent:
		t.handleKey(ev)

	case PreeditEvent:
		t.preedit = []rune(ev.Text)
		c := ev.Cursor
		if c < 0 {
			c = 0
		}
		if c > len(t.preedit) {
			c = len(t.preedit)
		}
		t.preeditCursor = c
		t.dirty |= DirtyText | DirtyCursor

	case CommitEvent:
		t.preedit = nil
		t.preeditCursor = 0
		t.buf.Insert(ev.Text)
		t.dirty |= DirtyText | DirtyCursor
	}
}

func (t *TextInput) handleKey(ev KeyEvent) {
	if action, ok := keymap.Resolve(t.bindings, ev.Key, ev.Modifiers); ok {
		t.applyAction(action, ev.Modifiers)
		return
	}

	if ev.Rune == 0 || !unicode.IsPrint(ev.Rune) {
		return
	}
	// A held shortcut modifier means this rune is not text entry.
	if ev.Modifiers.Ctrl() || ev.Modifiers.Super() {
		return
	}
	t.buf.Insert(string(ev.Rune))
	t.dirty |= DirtyText | DirtyCursor
}

// applyAction interprets a resolved action against the buffer. Shift held
// during a motion extends the selection instead of collapsing it.
func (t *TextInput) applyAction(action keymap.Action, mods keymap.Modifiers) {
	extend := mods.Shift()

	if action.IsMotion() {
		t.applyMotion(action, extend)
		t.dirty |= DirtyCursor | DirtySelection
		return
	}

	switch action {
	case keymap.DeletePrev:
		t.buf.Delete(-1)
		t.dirty |= DirtyText | DirtyCursor

	case keymap.DeleteNext:
		// The cursor index stays put, but content to its right changed;
		// layout downstream must still recompute.
		t.buf.Delete(1)
		t.dirty |= DirtyText | DirtyCursor

	case keymap.DeleteWordPrev:
		t.buf.DeleteWord(false)
		t.dirty |= DirtyText | DirtyCursor

	case keymap.DeleteWordNext:
		t.buf.DeleteWord(true)
		t.dirty |= DirtyText | DirtyCursor

	case keymap.Submit:
		if t.buf.Multiline() && !t.submitOnEnter {
			t.insertNewline()
			return
		}
		t.submit()

	case keymap.InsertNewline:
		t.insertNewline()

	case keymap.SelectAll:
		t.buf.SelectAll()
		t.dirty |= DirtyCursor | DirtySelection

	case keymap.Cut:
		if !t.buf.HasSelection() {
			return
		}
		// Masked content never reaches the clipboard, but the selected
		// span is still deleted.
		if !t.buf.Masked() {
			t.writeClipboard(t.buf.SelectedText())
		}
		t.buf.Delete(0)
		t.dirty |= DirtyText | DirtyCursor | DirtySelection

	case keymap.Copy:
		if t.buf.Masked() || !t.buf.HasSelection() {
			return
		}
		t.writeClipboard(t.buf.SelectedText())

	case keymap.Paste:
		text, err := t.clipboard.ReadAll()
		if err != nil || text == "" {
			return
		}
		t.buf.Insert(text)
		t.dirty |= DirtyText | DirtyCursor

	case keymap.Undo:
		if t.buf.Undo() {
			t.dirty |= DirtyText | DirtyCursor | DirtySelection
		}

	case keymap.Redo:
		if t.buf.Redo() {
			t.dirty |= DirtyText | DirtyCursor | DirtySelection
		}
	}
}

func (t *TextInput) applyMotion(action keymap.Action, extend bool) {
	switch action {
	case keymap.CharLeft:
		t.buf.MoveCursor(-1, extend)
	case keymap.CharRight:
		t.buf.MoveCursor(1, extend)
	case keymap.WordLeft:
		t.buf.MoveWord(false, extend)
	case keymap.WordRight:
		t.buf.MoveWord(true, extend)
	case keymap.LineStart:
		t.buf.MoveToLineStart(extend)
	case keymap.LineEnd:
		t.buf.MoveToLineEnd(extend)
	case keymap.TextStart:
		t.buf.MoveToStart(extend)
	case keymap.TextEnd:
		t.buf.MoveToEnd(extend)
	case keymap.LineUp:
		t.moveVertical(-1, extend)
	case keymap.LineDown:
		t.moveVertical(1, extend)
	}
}

// moveVertical moves the cursor across visual lines in multiline mode,
// preserving the pixel column. Single-line inputs jump to the buffer start
// or end, matching platform conventions for Up/Down in one-line fields.
func (t *TextInput) moveVertical(delta int, extend bool) {
	if !t.buf.Multiline() {
		if delta < 0 {
			t.buf.MoveToStart(extend)
		} else {
			t.buf.MoveToEnd(extend)
		}
		return
	}

	pos := MoveCursorVertical(t.buf.DisplayText(), t.buf.Cursor(), delta, t.contentWidth(), t.measurer)
	if extend {
		t.buf.SetSelection(t.buf.anchor, pos)
	} else {
		t.buf.SetCursor(pos)
	}
}

func (t *TextInput) insertNewline() {
	if !t.buf.Multiline() {
		return
	}
	t.buf.Insert("\n")
	t.dirty |= DirtyText | DirtyCursor
}

func (t *TextInput) submit() {
	value := t.buf.Text()
	if t.onSubmit != nil {
		t.onSubmit(SubmitEvent{ID: t.id, Value: value})
	}
	if !t.retain {
		t.buf.SetText("")
		t.dirty |= DirtyText | DirtyCursor | DirtySelection
	}
}

func (t *TextInput) writeClipboard(text string) {
	if text == "" {
		return
	}
	// A missing or denied clipboard degrades to a no-op.
	_ = t.clipboard.WriteAll(text)
}

// ============================================================================
// Scroll Into View
// ============================================================================

func (t *TextInput) contentWidth() float32 {
	return t.width - t.padding[1] - t.padding[3]
}

func (t *TextInput) contentHeight() float32 {
	return t.height - t.padding[0] - t.padding[2]
}

func (t *TextInput) lineHeight() float32 {
	return t.style.FontSize * 1.5
}

// updateScroll recomputes the scroll offset so the cursor stays in view.
// When the measurer has no layout answer yet, scrollPending stays set and
// the recompute retries on the next tick.
func (t *TextInput) updateScroll() {
	display := t.DisplayText()
	cursor := t.CursorOffset()

	if !t.buf.Multiline() {
		cursorX, ok := t.measurer.MeasureToCursor(display, cursor)
		if !ok {
			return
		}
		textW, ok := t.measurer.MeasureToCursor(display, len([]rune(display)))
		if !ok {
			return
		}
		if x := scrollIntoViewX(cursorX, textW, t.contentWidth(), t.scrollMargin, t.scrollX); x != t.scrollX {
			t.scrollX = x
			t.dirty |= DirtyScroll
		}
		t.scrollPending = false
		return
	}

	lines, ok := WrapText(display, t.contentWidth(), t.measurer)
	if !ok {
		return
	}
	row, _, ok := CursorPositionInWrappedText(lines, cursor, t.measurer)
	if !ok {
		return
	}

	lineH := t.lineHeight()
	top := float32(row) * lineH
	contentH := float32(len(lines)) * lineH
	if y := scrollIntoViewY(top, top+lineH, contentH, t.contentHeight(), t.scrollPadding, t.scrollY); y != t.scrollY {
		t.scrollY = y
		t.dirty |= DirtyScroll
	}
	t.scrollPending = false
}

// ============================================================================
// Render Contract
// ============================================================================

// Value returns the true buffer content.
func (t *TextInput) Value() string {
	return t.buf.Text()
}

// SetValue replaces the content from outside the event flow; the cursor
// moves to the end of the new text.
func (t *TextInput) SetValue(value string) *TextInput {
	t.buf.SetText(value)
	t.dirty |= DirtyText | DirtyCursor | DirtySelection
	return t
}

// DisplayText returns the externally visible text: the (possibly masked)
// buffer projection with any IME composition spliced in at the cursor.
func (t *TextInput) DisplayText() string {
	display := t.buf.DisplayText()
	if len(t.preedit) == 0 {
		return display
	}

	runes := []rune(display)
	out := make([]rune, 0, len(runes)+len(t.preedit))
	out = append(out, runes[:t.buf.Cursor()]...)
	out = append(out, t.preedit...)
	out = append(out, runes[t.buf.Cursor():]...)
	return string(out)
}

// CursorOffset returns the cursor's rune offset within DisplayText,
// including the position inside any IME composition.
func (t *TextInput) CursorOffset() int {
	return t.buf.Cursor() + t.preeditCursor
}

// SelectionRange returns the ordered selection bounds in rune offsets.
func (t *TextInput) SelectionRange() (start, end int) {
	return t.buf.Selection()
}

// ComposingPreedit reports whether an IME composition is pending.
func (t *TextInput) ComposingPreedit() bool {
	return len(t.preedit) > 0
}

// CursorVisible reports whether the cursor indicator should be drawn this
// frame (blink phase, hidden entirely while inactive).
func (t *TextInput) CursorVisible() bool {
	return !t.inactive && t.blink.visible
}

// ShowPlaceholder reports whether the placeholder should be drawn: only
// while the buffer is empty and the widget is inactive.
func (t *TextInput) ShowPlaceholder() bool {
	return t.placeholder != "" && t.buf.Len() == 0 && t.inactive
}

// Placeholder returns the placeholder text.
func (t *TextInput) Placeholder() string {
	return t.placeholder
}

// ScrollOffset returns the current scroll offsets in pixels.
func (t *TextInput) ScrollOffset() (x, y float32) {
	return t.scrollX, t.scrollY
}

// Buffer exposes the underlying editing model.
func (t *TextInput) Buffer() *Buffer {
	return t.buf
}

// ID returns the widget identifier used in SubmitEvents.
func (t *TextInput) ID() string {
	return t.id
}

// ============================================================================
// Configuration
// ============================================================================

// SetInactive toggles the inactive flag. While inactive the widget ignores
// all input and hides the cursor; reactivation resets the blink phase.
func (t *TextInput) SetInactive(inactive bool) *TextInput {
	if t.inactive == inactive {
		return t
	}
	t.inactive = inactive
	t.dirty |= DirtyCursor
	return t
}

// Inactive reports whether the widget is ignoring input.
func (t *TextInput) Inactive() bool {
	return t.inactive
}

// SetSize sets the outer viewport size in pixels.
func (t *TextInput) SetSize(width, height float32) *TextInput {
	t.width = width
	t.height = height
	t.scrollPending = true
	return t
}

// SetPadding sets the content padding (top, right, bottom, left).
func (t *TextInput) SetPadding(top, right, bottom, left float32) *TextInput {
	t.padding = [4]float32{top, right, bottom, left}
	t.scrollPending = true
	return t
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(placeholder string) *TextInput {
	t.placeholder = placeholder
	t.dirty |= DirtyText
	return t
}

// SetStyle sets the text style consumed by the render collaborator.
func (t *TextInput) SetStyle(style TextStyle) *TextInput {
	t.style = style
	t.dirty |= DirtyText
	t.scrollPending = true
	return t
}

// Style returns the text style.
func (t *TextInput) Style() TextStyle {
	return t.style
}

// SetPlaceholderStyle sets the style used while the placeholder shows.
func (t *TextInput) SetPlaceholderStyle(style TextStyle) *TextInput {
	t.placeholderStyle = style
	t.dirty |= DirtyText
	return t
}

// PlaceholderStyle returns the placeholder style.
func (t *TextInput) PlaceholderStyle() TextStyle {
	return t.placeholderStyle
}

// SetBindings replaces the navigation table.
func (t *TextInput) SetBindings(bindings []keymap.Binding) *TextInput {
	t.bindings = bindings
	return t
}

// OnSubmit registers the submission sink.
func (t *TextInput) OnSubmit(fn func(SubmitEvent)) *TextInput {
	t.onSubmit = fn
	return t
}

// OnChange registers a callback observing the post-batch value after any
// tick that changed it.
func (t *TextInput) OnChange(fn func(text string)) *TextInput {
	t.onChange = fn
	return t
}
