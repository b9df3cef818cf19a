package cmd

import (
	"fmt"

	"github.com/mj1618/zommation/internal/logging"
	"github.com/mj1618/zommation/internal/platform"
)

// copyToClipboard places text on the system clipboard.
func copyToClipboard(text string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.ClipboardManager == nil {
		return fmt.Errorf("clipboard not available on this platform")
	}
	if err := provider.ClipboardManager.SetText(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	logging.Verbose("copied %d bytes to clipboard", len(text))
	return nil
}
