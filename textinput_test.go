package textinput

import (
	"errors"
	"testing"
	"time"

	"github.com/rparrett/simple-text-input/keymap"
)

// fakeClipboard is an in-memory clipboard for tests.
type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
}

func (c *fakeClipboard) ReadAll() (string, error) {
	return c.text, c.readErr
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.text = text
	return nil
}

func newTestInput(opts Options) *TextInput {
	// Force the Control table so tests behave the same on every platform.
	if opts.Bindings == nil {
		opts.Bindings = keymap.DefaultBindings()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &fakeClipboard{}
	}
	return New(opts)
}

func (t *TextInput) pressKey(key keymap.Key, mods keymap.Modifiers) {
	t.PushKey(key, 0, mods)
}

func TestTypingAdvancesCursor(t *testing.T) {
	in := newTestInput(Options{})
	in.PushText("abc")

	d := in.Tick(time.Now())

	if got := in.Value(); got != "abc" {
		t.Errorf("Value = %q, want %q", got, "abc")
	}
	if got := in.CursorOffset(); got != 3 {
		t.Errorf("CursorOffset = %d, want 3", got)
	}
	if d&DirtyText == 0 || d&DirtyCursor == 0 {
		t.Errorf("Tick dirty = %b, want text and cursor flags set", d)
	}
}

func TestQueueDropsOldestPastLimit(t *testing.T) {
	in := newTestInput(Options{QueueLimit: 4})
	in.PushText("abcdef")
	in.Tick(time.Now())

	if got := in.Value(); got != "cdef" {
		t.Errorf("Value = %q, want %q", got, "cdef")
	}
}

func TestOnChangeFiresOncePerBatch(t *testing.T) {
	var calls []string
	in := newTestInput(Options{})
	in.OnChange(func(text string) { calls = append(calls, text) })

	in.PushText("abc")
	in.Tick(time.Now())

	if len(calls) != 1 || calls[0] != "abc" {
		t.Errorf("OnChange calls = %v, want one call with %q", calls, "abc")
	}

	// A tick without content change stays silent.
	in.pressKey(keymap.KeyLeft, 0)
	in.Tick(time.Now())
	if len(calls) != 1 {
		t.Errorf("OnChange calls after motion = %d, want 1", len(calls))
	}
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name      string
		retain    bool
		wantValue string
	}{
		{name: "clears value", retain: false, wantValue: ""},
		{name: "retains value", retain: true, wantValue: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []SubmitEvent
			in := newTestInput(Options{ID: "name", Value: "hello", RetainOnSubmit: tt.retain})
			in.OnSubmit(func(e SubmitEvent) { got = append(got, e) })

			in.pressKey(keymap.KeyEnter, 0)
			in.Tick(time.Now())

			if len(got) != 1 {
				t.Fatalf("submits = %d, want 1", len(got))
			}
			if got[0].ID != "name" || got[0].Value != "hello" {
				t.Errorf("SubmitEvent = %+v, want {name hello}", got[0])
			}
			if v := in.Value(); v != tt.wantValue {
				t.Errorf("Value after submit = %q, want %q", v, tt.wantValue)
			}
		})
	}
}

func TestEnterInMultiline(t *testing.T) {
	tests := []struct {
		name          string
		submitOnEnter bool
		mods          keymap.Modifiers
		wantValue     string
		wantSubmits   int
	}{
		{
			name:      "plain enter inserts newline",
			wantValue: "ab\n", wantSubmits: 0,
		},
		{
			name:          "submit on enter submits",
			submitOnEnter: true,
			wantValue:     "", wantSubmits: 1,
		},
		{
			name:          "shift enter still inserts newline",
			submitOnEnter: true,
			mods:          keymap.ModShift,
			wantValue:     "ab\n", wantSubmits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submits := 0
			in := newTestInput(Options{Value: "ab", Multiline: true, SubmitOnEnter: tt.submitOnEnter})
			in.OnSubmit(func(SubmitEvent) { submits++ })

			in.pressKey(keymap.KeyEnter, tt.mods)
			in.Tick(time.Now())

			if v := in.Value(); v != tt.wantValue {
				t.Errorf("Value = %q, want %q", v, tt.wantValue)
			}
			if submits != tt.wantSubmits {
				t.Errorf("submits = %d, want %d", submits, tt.wantSubmits)
			}
		})
	}
}

func TestShiftEnterIsNoopInSingleLine(t *testing.T) {
	submits := 0
	in := newTestInput(Options{Value: "ab"})
	in.OnSubmit(func(SubmitEvent) { submits++ })

	in.pressKey(keymap.KeyEnter, keymap.ModShift)
	in.Tick(time.Now())

	if v := in.Value(); v != "ab" {
		t.Errorf("Value = %q, want %q", v, "ab")
	}
	if submits != 0 {
		t.Errorf("submits = %d, want 0", submits)
	}
}

func TestInactiveDiscardsQueuedInput(t *testing.T) {
	in := newTestInput(Options{Inactive: true})

	// Input arriving while inactive is drained and dropped, so it never
	// applies after reactivation.
	in.PushText("stale")
	in.Tick(time.Now())
	if v := in.Value(); v != "" {
		t.Errorf("Value while inactive = %q, want empty", v)
	}

	in.SetInactive(false)
	in.Tick(time.Now())
	if v := in.Value(); v != "" {
		t.Errorf("Value after reactivation = %q, want empty", v)
	}

	in.PushText("fresh")
	in.Tick(time.Now())
	if v := in.Value(); v != "fresh" {
		t.Errorf("Value = %q, want %q", v, "fresh")
	}
}

func TestCursorBlink(t *testing.T) {
	base := time.Unix(100, 0)
	in := newTestInput(Options{BlinkInterval: 100 * time.Millisecond})

	in.Tick(base)
	if !in.CursorVisible() {
		t.Fatal("cursor should start visible")
	}

	d := in.Tick(base.Add(150 * time.Millisecond))
	if in.CursorVisible() {
		t.Error("cursor should have blinked off")
	}
	if d&DirtyCursor == 0 {
		t.Errorf("blink flip dirty = %b, want cursor flag", d)
	}

	in.Tick(base.Add(300 * time.Millisecond))
	if !in.CursorVisible() {
		t.Error("cursor should have blinked back on")
	}

	// Any edit resets the phase to visible.
	in.Tick(base.Add(450 * time.Millisecond))
	in.PushText("a")
	in.Tick(base.Add(460 * time.Millisecond))
	if !in.CursorVisible() {
		t.Error("typing should reset the cursor to visible")
	}

	in.SetInactive(true)
	if in.CursorVisible() {
		t.Error("inactive widget should never show a cursor")
	}
}

func TestShowPlaceholder(t *testing.T) {
	tests := []struct {
		name        string
		placeholder string
		value       string
		inactive    bool
		want        bool
	}{
		{name: "empty and inactive", placeholder: "Name", inactive: true, want: true},
		{name: "active", placeholder: "Name", inactive: false, want: false},
		{name: "has content", placeholder: "Name", value: "x", inactive: true, want: false},
		{name: "no placeholder", inactive: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newTestInput(Options{Placeholder: tt.placeholder, Value: tt.value, Inactive: tt.inactive})
			if got := in.ShowPlaceholder(); got != tt.want {
				t.Errorf("ShowPlaceholder = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIMEComposition(t *testing.T) {
	in := newTestInput(Options{Value: "ab"})

	in.Push(PreeditEvent{Text: "か", Cursor: 1})
	in.Tick(time.Now())
	if !in.ComposingPreedit() {
		t.Fatal("expected pending composition")
	}
	if got := in.DisplayText(); got != "abか" {
		t.Errorf("DisplayText = %q, want %q", got, "abか")
	}
	if got := in.Value(); got != "ab" {
		t.Errorf("Value = %q, want %q (composition must stay out of the buffer)", got, "ab")
	}
	if got := in.CursorOffset(); got != 3 {
		t.Errorf("CursorOffset = %d, want 3", got)
	}

	// Each preedit replaces the previous one wholesale.
	in.Push(PreeditEvent{Text: "かん", Cursor: 2})
	in.Tick(time.Now())
	if got := in.DisplayText(); got != "abかん" {
		t.Errorf("DisplayText = %q, want %q", got, "abかん")
	}
	if got := in.CursorOffset(); got != 4 {
		t.Errorf("CursorOffset = %d, want 4", got)
	}

	// Commit clears the composition and inserts for real.
	in.Push(CommitEvent{Text: "感"})
	in.Tick(time.Now())
	if in.ComposingPreedit() {
		t.Error("commit should clear the composition")
	}
	if got := in.Value(); got != "ab感" {
		t.Errorf("Value = %q, want %q", got, "ab感")
	}
}

func TestPreeditCancel(t *testing.T) {
	in := newTestInput(Options{Value: "ab"})

	in.Push(PreeditEvent{Text: "か", Cursor: 1})
	in.Tick(time.Now())
	in.Push(PreeditEvent{})
	in.Tick(time.Now())

	if in.ComposingPreedit() {
		t.Error("empty preedit should cancel the composition")
	}
	if got := in.DisplayText(); got != "ab" {
		t.Errorf("DisplayText = %q, want %q", got, "ab")
	}
}

func TestDeleteForwardMarksCursorDirty(t *testing.T) {
	in := newTestInput(Options{Value: "abc"})
	in.Buffer().SetCursor(0)

	in.Tick(time.Now())

	in.pressKey(keymap.KeyDelete, 0)
	d := in.Tick(time.Now())

	if got := in.Value(); got != "bc" {
		t.Errorf("Value = %q, want %q", got, "bc")
	}
	if got := in.CursorOffset(); got != 0 {
		t.Errorf("CursorOffset = %d, want 0", got)
	}
	// The index did not move, but downstream cursor layout must recompute.
	if d&DirtyCursor == 0 {
		t.Errorf("dirty = %b, want cursor flag despite unmoved index", d)
	}
}

func TestClipboard(t *testing.T) {
	t.Run("copy leaves content", func(t *testing.T) {
		clip := &fakeClipboard{}
		in := newTestInput(Options{Value: "hello world", Clipboard: clip})
		in.pressKey(keymap.KeyA, keymap.ModCtrl)
		in.pressKey(keymap.KeyC, keymap.ModCtrl)
		in.Tick(time.Now())

		if clip.text != "hello world" {
			t.Errorf("clipboard = %q, want %q", clip.text, "hello world")
		}
		if v := in.Value(); v != "hello world" {
			t.Errorf("Value = %q, want unchanged", v)
		}
	})

	t.Run("cut removes content", func(t *testing.T) {
		clip := &fakeClipboard{}
		in := newTestInput(Options{Value: "hello", Clipboard: clip})
		in.pressKey(keymap.KeyA, keymap.ModCtrl)
		in.pressKey(keymap.KeyX, keymap.ModCtrl)
		in.Tick(time.Now())

		if clip.text != "hello" {
			t.Errorf("clipboard = %q, want %q", clip.text, "hello")
		}
		if v := in.Value(); v != "" {
			t.Errorf("Value = %q, want empty", v)
		}
	})

	t.Run("masked cut deletes but never writes clipboard", func(t *testing.T) {
		clip := &fakeClipboard{}
		in := newTestInput(Options{Value: "secret", Mask: '•', Clipboard: clip})
		in.pressKey(keymap.KeyA, keymap.ModCtrl)
		in.pressKey(keymap.KeyX, keymap.ModCtrl)
		in.Tick(time.Now())

		if clip.text != "" {
			t.Errorf("clipboard = %q, want empty for masked content", clip.text)
		}
		if v := in.Value(); v != "" {
			t.Errorf("Value = %q, want empty", v)
		}
	})

	t.Run("masked copy is a no-op", func(t *testing.T) {
		clip := &fakeClipboard{}
		in := newTestInput(Options{Value: "secret", Mask: '•', Clipboard: clip})
		in.pressKey(keymap.KeyA, keymap.ModCtrl)
		in.pressKey(keymap.KeyC, keymap.ModCtrl)
		in.Tick(time.Now())

		if clip.text != "" {
			t.Errorf("clipboard = %q, want empty for masked content", clip.text)
		}
	})

	t.Run("paste inserts at cursor", func(t *testing.T) {
		clip := &fakeClipboard{text: " world"}
		in := newTestInput(Options{Value: "hello", Clipboard: clip})
		in.pressKey(keymap.KeyV, keymap.ModCtrl)
		in.Tick(time.Now())

		if v := in.Value(); v != "hello world" {
			t.Errorf("Value = %q, want %q", v, "hello world")
		}
	})

	t.Run("paste degrades to no-op on clipboard error", func(t *testing.T) {
		clip := &fakeClipboard{text: "x", readErr: errors.New("denied")}
		in := newTestInput(Options{Value: "hello", Clipboard: clip})
		in.pressKey(keymap.KeyV, keymap.ModCtrl)
		in.Tick(time.Now())

		if v := in.Value(); v != "hello" {
			t.Errorf("Value = %q, want unchanged", v)
		}
	})
}

func TestShiftMotionExtendsSelection(t *testing.T) {
	in := newTestInput(Options{Value: "hello"})

	in.pressKey(keymap.KeyLeft, keymap.ModShift)
	in.pressKey(keymap.KeyLeft, keymap.ModShift)
	d := in.Tick(time.Now())

	start, end := in.SelectionRange()
	if start != 3 || end != 5 {
		t.Errorf("SelectionRange = (%d, %d), want (3, 5)", start, end)
	}
	if got := in.CursorOffset(); got != 3 {
		t.Errorf("CursorOffset = %d, want 3", got)
	}
	if d&DirtySelection == 0 {
		t.Errorf("dirty = %b, want selection flag", d)
	}
}

func TestScrollRetriesUntilMeasurerReady(t *testing.T) {
	fm := &flakyMeasurer{}
	in := newTestInput(Options{Value: "hello world long text", Measurer: fm})
	in.SetSize(10, 20)

	// Layout has no answer yet; the offset stays put and the recompute
	// stays pending.
	in.Tick(time.Now())
	if x, _ := in.ScrollOffset(); x != 0 {
		t.Fatalf("scrollX before layout = %v, want 0", x)
	}

	fm.ready = true
	d := in.Tick(time.Now())

	if d&DirtyScroll == 0 {
		t.Errorf("dirty = %b, want scroll flag once layout answers", d)
	}
	if x, _ := in.ScrollOffset(); x != 11 {
		t.Errorf("scrollX = %v, want 11", x)
	}
}

func TestClickPositionsCursor(t *testing.T) {
	in := newTestInput(Options{Value: "hello world"})
	in.SetSize(100, 20)

	in.ClickAt(3.4, 0, 0)
	if got := in.Buffer().Cursor(); got != 3 {
		t.Errorf("cursor after click = %d, want 3", got)
	}

	in.DragTo(7.6, 0)
	if start, end := in.SelectionRange(); start != 3 || end != 8 {
		t.Errorf("drag selection = (%d, %d), want (3, 8)", start, end)
	}

	in.DoubleClickAt(1, 0)
	if start, end := in.SelectionRange(); start != 0 || end != 5 {
		t.Errorf("double-click selection = (%d, %d), want (0, 5)", start, end)
	}

	in.TripleClickAt(1, 0)
	if start, end := in.SelectionRange(); start != 0 || end != 11 {
		t.Errorf("triple-click selection = (%d, %d), want (0, 11)", start, end)
	}
}

func TestShiftClickExtendsFromAnchor(t *testing.T) {
	in := newTestInput(Options{Value: "hello world"})
	in.Buffer().SetCursor(2)

	in.ClickAt(9, 0, keymap.ModShift)
	if start, end := in.SelectionRange(); start != 2 || end != 9 {
		t.Errorf("shift-click selection = (%d, %d), want (2, 9)", start, end)
	}
}

func TestPointerIgnoredWhileInactive(t *testing.T) {
	in := newTestInput(Options{Value: "hello", Inactive: true})
	in.Buffer().SetCursor(0)

	in.ClickAt(4, 0, 0)
	if got := in.Buffer().Cursor(); got != 0 {
		t.Errorf("cursor = %d, want 0 (inactive widget ignores pointer)", got)
	}
}

func TestSetValueMovesCursorToEnd(t *testing.T) {
	in := newTestInput(Options{Value: "abc"})
	in.Buffer().SetCursor(1)

	in.SetValue("wxyz")
	if got := in.Value(); got != "wxyz" {
		t.Errorf("Value = %q, want %q", got, "wxyz")
	}
	if got := in.CursorOffset(); got != 4 {
		t.Errorf("CursorOffset = %d, want 4", got)
	}
}

func TestCtrlModifiedRuneIsNotTextEntry(t *testing.T) {
	in := newTestInput(Options{})

	// A shortcut chord whose key resolves to no binding must not leak its
	// rune into the buffer.
	in.PushKey(keymap.KeyNone, 'b', keymap.ModCtrl)
	in.Tick(time.Now())

	if v := in.Value(); v != "" {
		t.Errorf("Value = %q, want empty", v)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	in := newTestInput(Options{})
	in.PushText("ab")
	in.Tick(time.Now())

	in.pressKey(keymap.KeyZ, keymap.ModCtrl)
	in.Tick(time.Now())
	if v := in.Value(); v != "a" {
		t.Errorf("Value after undo = %q, want %q", v, "a")
	}

	in.pressKey(keymap.KeyZ, keymap.ModCtrl|keymap.ModShift)
	in.Tick(time.Now())
	if v := in.Value(); v != "ab" {
		t.Errorf("Value after redo = %q, want %q", v, "ab")
	}

	in.pressKey(keymap.KeyZ, keymap.ModCtrl)
	in.pressKey(keymap.KeyY, keymap.ModCtrl)
	in.Tick(time.Now())
	if v := in.Value(); v != "ab" {
		t.Errorf("Value after undo+redo = %q, want %q", v, "ab")
	}
}
