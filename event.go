package textinput

import "github.com/rparrett/simple-text-input/keymap"

// ============================================================================
// Input Events
// ============================================================================

// Event is one input record queued for a widget. Records are applied in
// arrival order when the widget ticks.
type Event interface {
	isEvent()
}

// KeyEvent is a key press. Key identifies navigation/editing keys that go
// through the binding table; Rune carries printable character input (0 when
// the key produced no character).
type KeyEvent struct {
	Key       keymap.Key
	Rune      rune
	Modifiers keymap.Modifiers
	Repeat    bool
}

func (KeyEvent) isEvent() {}

// PreeditEvent carries an in-progress IME composition. Each preedit
// replaces the previous one wholesale; the composition is displayed at the
// cursor but never enters the buffer.
type PreeditEvent struct {
	// Text is the uncommitted composition. Empty cancels the composition.
	Text string

	// Cursor is the rune offset of the composition caret within Text.
	Cursor int
}

func (PreeditEvent) isEvent() {}

// CommitEvent carries final text committed by the IME. It clears any
// pending preedit and inserts at the cursor.
type CommitEvent struct {
	Text string
}

func (CommitEvent) isEvent() {}

// ============================================================================
// Per-Frame Event Queue
// ============================================================================

// defaultQueueLimit bounds how many events a queue buffers between ticks.
const defaultQueueLimit = 256

// eventQueue is an append-only per-frame event log, drained once per tick.
// When input outpaces the frame rate past the limit, the oldest records are
// dropped so the queue never grows without bound.
type eventQueue struct {
	events []Event
	limit  int
}

func newEventQueue(limit int) *eventQueue {
	if limit <= 0 {
		limit = defaultQueueLimit
	}
	return &eventQueue{limit: limit}
}

func (q *eventQueue) push(e Event) {
	if len(q.events) >= q.limit {
		drop := len(q.events) - q.limit + 1
		q.events = append(q.events[:0], q.events[drop:]...)
	}
	q.events = append(q.events, e)
}

// drain applies every queued event in arrival order, then empties the
// queue.
func (q *eventQueue) drain(apply func(Event)) {
	// Events pushed during apply belong to the next frame.
	pending := q.events
	q.events = nil
	for _, e := range pending {
		apply(e)
	}
}

func (q *eventQueue) len() int {
	return len(q.events)
}
