package textinput

import "github.com/atotto/clipboard"

// Clipboard is the optional system clipboard collaborator. Errors from
// either side (missing display server, denied permission) degrade to no-ops
// in the widget; they never surface as editing failures.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard is the default Clipboard backed by the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
