// Package platform wraps the operating system services the CLI touches
// outside its own files. Today that is the clipboard.
package platform

// ClipboardManager reads and writes the system clipboard.
type ClipboardManager interface {
	GetText() (string, error)
	SetText(text string) error
	Clear() error
}
