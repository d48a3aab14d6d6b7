package keymap

import (
	"fmt"
	"strings"
)

// Key is a logical (layout-resolved) key identifier. Only the keys that
// participate in editing bindings are enumerated; printable character input
// arrives as runes alongside the key event and never goes through a table.
type Key uint16

const (
	KeyNone Key = iota

	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape

	// Letter keys, for modifier shortcuts (select-all, clipboard, history).
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "escape",
}

// String returns the config-file name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + (k - KeyA)))
	}
	return "none"
}

// ParseKey resolves a config-file key name ("left", "enter", "a"..."z").
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(name)
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		return KeyA + Key(name[0]-'a'), nil
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win key on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Contains reports whether every modifier in req is held.
func (m Modifiers) Contains(req Modifiers) bool {
	return m&req == req
}

var modifierNames = map[string]Modifiers{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"super": ModSuper,
}

// ParseModifiers resolves a list of config-file modifier names.
func ParseModifiers(names []string) (Modifiers, error) {
	var mods Modifiers
	for _, name := range names {
		m, ok := modifierNames[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
		mods |= m
	}
	return mods, nil
}
