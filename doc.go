// Package textinput provides a retained-mode text input widget: an editing
// buffer with cursor and selection, a binding-table action resolver, a
// per-frame input queue, a blinking cursor, IME composition, masking,
// placeholder policy, and scroll-into-view behavior.
//
// The widget is host-agnostic. A rendering stack integrates it by pushing
// input events, calling Tick once per frame, and reading the render
// contract (DisplayText, CursorOffset, SelectionRange, ScrollOffset) plus
// the returned dirty flags. Text measurement and clipboard access are
// pluggable collaborators; the defaults are a monospace grid and the OS
// clipboard.
package textinput
