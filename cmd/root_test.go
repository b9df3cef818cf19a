package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"init", "show", "screen", "region", "swipe", "action", "reset", "background",
		"export", "import", "snapshot", "color", "preview", "do", "serve", "config",
	}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		defValue string
	}{
		{"file", "string", ""},
		{"config", "string", ""},
		{"format", "string", "yaml"},
		{"pretty", "bool", "false"},
		{"verbose", "bool", "false"},
	}
	for _, tt := range tests {
		f := rootCmd.PersistentFlags().Lookup(tt.name)
		if f == nil {
			t.Errorf("missing persistent flag --%s", tt.name)
			continue
		}
		if f.Value.Type() != tt.typ {
			t.Errorf("--%s type = %s, want %s", tt.name, f.Value.Type(), tt.typ)
		}
		if f.DefValue != tt.defValue {
			t.Errorf("--%s default = %q, want %q", tt.name, f.DefValue, tt.defValue)
		}
	}
}

func findCommand(t *testing.T, path ...string) *cobra.Command {
	t.Helper()
	c, rest, err := rootCmd.Find(path)
	if err != nil || len(rest) > 0 {
		t.Fatalf("command %v not found: %v", path, err)
	}
	return c
}

func TestSubcommands_Registered(t *testing.T) {
	tests := [][]string{
		{"screen", "set"},
		{"region", "add"}, {"region", "delete"}, {"region", "move"},
		{"region", "constrain"}, {"region", "list"}, {"region", "check"},
		{"swipe", "set"}, {"swipe", "duration"}, {"swipe", "clear"},
		{"action", "add"}, {"action", "remove"}, {"action", "move"}, {"action", "list"},
		{"background", "set"}, {"background", "clear"},
		{"export", "lua"}, {"export", "json"},
		{"snapshot", "take"}, {"snapshot", "last"}, {"snapshot", "list"},
		{"color", "pick"}, {"color", "parse"},
		{"config", "show"}, {"config", "init"},
	}
	for _, path := range tests {
		c := findCommand(t, path...)
		if c.RunE == nil {
			t.Errorf("%v has no RunE", path)
		}
	}
}

func TestActionAddCmd_Flags(t *testing.T) {
	c := findCommand(t, "action", "add")
	tests := []struct {
		name     string
		typ      string
		defValue string
	}{
		{"region", "string", ""},
		{"image", "string", ""},
		{"threshold", "float64", "0"},
		{"timeout", "float64", "0"},
		{"duration", "float64", "0"},
		{"message", "string", ""},
		{"key", "string", ""},
		{"index", "int", "-1"},
	}
	for _, tt := range tests {
		f := c.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("action add: missing --%s", tt.name)
			continue
		}
		if f.Value.Type() != tt.typ || f.DefValue != tt.defValue {
			t.Errorf("action add --%s = %s(%q), want %s(%q)", tt.name, f.Value.Type(), f.DefValue, tt.typ, tt.defValue)
		}
	}
}

func TestDoCmd_Flags(t *testing.T) {
	for name, def := range map[string]string{"stop-on-error": "true", "keep-partial": "false", "dry-run": "false"} {
		f := doCmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("do: missing --%s", name)
			continue
		}
		if f.DefValue != def {
			t.Errorf("do --%s default = %q, want %q", name, f.DefValue, def)
		}
	}
}
