package platform

import (
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	ClipboardManager ClipboardManager
}

// ErrUnsupported is returned when no clipboard utility is available, e.g. a
// Linux host without xclip, xsel or wl-clipboard.
var ErrUnsupported = fmt.Errorf("clipboard is not available on %s/%s (install xclip, xsel or wl-clipboard on Linux)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc builds the Provider. Tests replace it to avoid touching the
// real clipboard.
var NewProviderFunc = newSystemProvider

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

func newSystemProvider() (*Provider, error) {
	if clipboard.Unsupported {
		return nil, ErrUnsupported
	}
	return &Provider{ClipboardManager: NewClipboard()}, nil
}
