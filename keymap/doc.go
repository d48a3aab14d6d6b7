// Package keymap maps physical keys plus held modifiers to semantic editing
// actions through ordered binding tables.
//
// Resolution is a first-match linear scan: a binding matches when its key
// equals the event key and its required modifiers are a subset of the held
// modifiers. Earlier entries take priority, so more specific bindings must
// precede more general ones. Two platform default tables are provided, and
// user tables can be loaded from TOML.
package keymap
