package platform

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard implements ClipboardManager with github.com/atotto/clipboard,
// which shells out to pbcopy, xclip/xsel/wl-copy or the Windows API.
type Clipboard struct{}

// NewClipboard returns a new Clipboard instance.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// GetText reads the current text content from the system clipboard.
func (c *Clipboard) GetText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// SetText writes text to the system clipboard.
func (c *Clipboard) SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Clear empties the system clipboard.
func (c *Clipboard) Clear() error {
	return c.SetText("")
}

// MemoryClipboard is an in-process ClipboardManager.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// GetText returns the stored text.
func (m *MemoryClipboard) GetText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// SetText replaces the stored text.
func (m *MemoryClipboard) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Clear empties the stored text.
func (m *MemoryClipboard) Clear() error {
	return m.SetText("")
}
