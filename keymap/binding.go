package keymap

// Binding associates a physical key plus a required modifier set with a
// semantic editing action.
type Binding struct {
	// Key is the logical key that triggers this binding.
	Key Key

	// Mods are the modifiers that must be held. Held modifiers beyond the
	// required set do not disqualify a match, so a plain arrow-key binding
	// still fires while shift extends the selection.
	Mods Modifiers

	// Action is the editing action to perform.
	Action Action
}

// Resolve scans the table in order and returns the first action whose key
// matches and whose required modifiers are all held.
//
// Ordering is part of the table's contract: more specific bindings (those
// requiring modifiers) must precede more general ones to be reachable. The
// scan is linear on purpose; tables are small and order-sensitive, so a hash
// lookup would change the semantics.
func Resolve(table []Binding, key Key, held Modifiers) (Action, bool) {
	for _, b := range table {
		if b.Key == key && held.Contains(b.Mods) {
			return b.Action, true
		}
	}
	return ActionNone, false
}
