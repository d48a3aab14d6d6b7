package keymap

// DefaultBindings returns the Control-based navigation table used on Linux
// and Windows. Modifier-requiring entries come first so they win the ordered
// scan over their unmodified counterparts.
func DefaultBindings() []Binding {
	return []Binding{
		// Word and buffer motion
		{Key: KeyLeft, Mods: ModCtrl, Action: WordLeft},
		{Key: KeyRight, Mods: ModCtrl, Action: WordRight},
		{Key: KeyHome, Mods: ModCtrl, Action: TextStart},
		{Key: KeyEnd, Mods: ModCtrl, Action: TextEnd},

		// Character and line motion
		{Key: KeyLeft, Action: CharLeft},
		{Key: KeyRight, Action: CharRight},
		{Key: KeyUp, Action: LineUp},
		{Key: KeyDown, Action: LineDown},
		{Key: KeyHome, Action: LineStart},
		{Key: KeyEnd, Action: LineEnd},

		// Deletion
		{Key: KeyBackspace, Mods: ModCtrl, Action: DeleteWordPrev},
		{Key: KeyDelete, Mods: ModCtrl, Action: DeleteWordNext},
		{Key: KeyBackspace, Action: DeletePrev},
		{Key: KeyDelete, Action: DeleteNext},

		// Submission. Shift+Enter must precede plain Enter.
		{Key: KeyEnter, Mods: ModShift, Action: InsertNewline},
		{Key: KeyEnter, Action: Submit},

		// Selection, clipboard, history
		{Key: KeyA, Mods: ModCtrl, Action: SelectAll},
		{Key: KeyC, Mods: ModCtrl, Action: Copy},
		{Key: KeyX, Mods: ModCtrl, Action: Cut},
		{Key: KeyV, Mods: ModCtrl, Action: Paste},
		{Key: KeyZ, Mods: ModCtrl | ModShift, Action: Redo},
		{Key: KeyZ, Mods: ModCtrl, Action: Undo},
		{Key: KeyY, Mods: ModCtrl, Action: Redo},
	}
}

// DefaultBindingsMacOS returns the Super/Alt-based navigation table used on
// macOS: Cmd+arrow for line and buffer jumps, Option+arrow for word jumps.
func DefaultBindingsMacOS() []Binding {
	return []Binding{
		// Line, buffer and word motion
		{Key: KeyLeft, Mods: ModSuper, Action: LineStart},
		{Key: KeyRight, Mods: ModSuper, Action: LineEnd},
		{Key: KeyUp, Mods: ModSuper, Action: TextStart},
		{Key: KeyDown, Mods: ModSuper, Action: TextEnd},
		{Key: KeyLeft, Mods: ModAlt, Action: WordLeft},
		{Key: KeyRight, Mods: ModAlt, Action: WordRight},

		// Character and line motion
		{Key: KeyLeft, Action: CharLeft},
		{Key: KeyRight, Action: CharRight},
		{Key: KeyUp, Action: LineUp},
		{Key: KeyDown, Action: LineDown},
		{Key: KeyHome, Action: LineStart},
		{Key: KeyEnd, Action: LineEnd},

		// Deletion
		{Key: KeyBackspace, Mods: ModAlt, Action: DeleteWordPrev},
		{Key: KeyDelete, Mods: ModAlt, Action: DeleteWordNext},
		{Key: KeyBackspace, Action: DeletePrev},
		{Key: KeyDelete, Action: DeleteNext},

		// Submission
		{Key: KeyEnter, Mods: ModShift, Action: InsertNewline},
		{Key: KeyEnter, Action: Submit},

		// Selection, clipboard, history
		{Key: KeyA, Mods: ModSuper, Action: SelectAll},
		{Key: KeyC, Mods: ModSuper, Action: Copy},
		{Key: KeyX, Mods: ModSuper, Action: Cut},
		{Key: KeyV, Mods: ModSuper, Action: Paste},
		{Key: KeyZ, Mods: ModSuper | ModShift, Action: Redo},
		{Key: KeyZ, Mods: ModSuper, Action: Undo},
	}
}
