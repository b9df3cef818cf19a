package platform

import "testing"

func roundTrip(t *testing.T, c ClipboardManager, text string) {
	t.Helper()
	if err := c.SetText(text); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	got, err := c.GetText()
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if got != text {
		t.Errorf("GetText = %q, want %q", got, text)
	}
}

func TestMemoryClipboard(t *testing.T) {
	c := &MemoryClipboard{}
	roundTrip(t, c, "hello clipboard test")
	roundTrip(t, c, "Hello 🌍 café ñ 中文")
	roundTrip(t, c, "  line1\n\tline2\n  line3  ")

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got, _ := c.GetText(); got != "" {
		t.Errorf("after Clear got %q", got)
	}
}

func TestSystemClipboardRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping system clipboard in short mode")
	}
	p, err := NewProvider()
	if err != nil {
		t.Skipf("no system clipboard: %v", err)
	}
	c := p.ClipboardManager
	original, err := c.GetText()
	if err != nil {
		t.Skipf("clipboard not readable: %v", err)
	}
	defer c.SetText(original)

	roundTrip(t, c, "#ff08ab  (255,8,171)")
}
