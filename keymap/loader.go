package keymap

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// tableConfig is the TOML structure for user binding tables:
//
//	[[binding]]
//	key = "left"
//	mods = ["ctrl"]
//	action = "word_left"
type tableConfig struct {
	Bindings []bindingConfig `toml:"binding"`
}

type bindingConfig struct {
	Key    string   `toml:"key"`
	Mods   []string `toml:"mods,omitempty"`
	Action string   `toml:"action"`
}

// LoadFile loads a binding table from a TOML file. Entries keep file order,
// which is the resolution order.
func LoadFile(path string) ([]Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening binding table: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader loads a binding table from TOML content.
func LoadReader(r io.Reader) ([]Binding, error) {
	var config tableConfig
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding binding table: %w", err)
	}

	table := make([]Binding, 0, len(config.Bindings))
	for i, bc := range config.Bindings {
		key, err := ParseKey(bc.Key)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		mods, err := ParseModifiers(bc.Mods)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, bc.Key, err)
		}
		action, err := ParseAction(bc.Action)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, bc.Key, err)
		}
		table = append(table, Binding{Key: key, Mods: mods, Action: action})
	}

	return table, nil
}
