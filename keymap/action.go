package keymap

import "fmt"

// Action is a semantic editing operation, decoupled from any physical key.
type Action uint8

const (
	ActionNone Action = iota

	// Cursor motion
	CharLeft
	CharRight
	WordLeft
	WordRight
	LineStart
	LineEnd
	TextStart
	TextEnd
	LineUp
	LineDown

	// Deletion
	DeletePrev
	DeleteNext
	DeleteWordPrev
	DeleteWordNext

	// Text entry
	Submit
	InsertNewline

	// Selection and clipboard
	SelectAll
	Cut
	Copy
	Paste

	// History
	Undo
	Redo
)

var actionNames = map[Action]string{
	CharLeft:       "char_left",
	CharRight:      "char_right",
	WordLeft:       "word_left",
	WordRight:      "word_right",
	LineStart:      "line_start",
	LineEnd:        "line_end",
	TextStart:      "text_start",
	TextEnd:        "text_end",
	LineUp:         "line_up",
	LineDown:       "line_down",
	DeletePrev:     "delete_prev",
	DeleteNext:     "delete_next",
	DeleteWordPrev: "delete_word_prev",
	DeleteWordNext: "delete_word_next",
	Submit:         "submit",
	InsertNewline:  "insert_newline",
	SelectAll:      "select_all",
	Cut:            "cut",
	Copy:           "copy",
	Paste:          "paste",
	Undo:           "undo",
	Redo:           "redo",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		m[name] = a
	}
	return m
}()

// String returns the config-file name of the action (e.g. "word_left").
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// IsMotion returns true for actions that only move the cursor. Motion
// actions extend the selection when the shift modifier is held.
func (a Action) IsMotion() bool {
	switch a {
	case CharLeft, CharRight, WordLeft, WordRight,
		LineStart, LineEnd, TextStart, TextEnd, LineUp, LineDown:
		return true
	}
	return false
}

// ParseAction resolves a config-file action name.
func ParseAction(name string) (Action, error) {
	if a, ok := actionsByName[name]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
