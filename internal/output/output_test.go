package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Name    string `yaml:"name"              json:"name"`
	Count   int    `yaml:"count"             json:"count"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	output := capture(t, func() error { return PrintYAML(sample{Name: "Main", Count: 3}) })

	if strings.Count(output, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}
	var decoded sample
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Name != "Main" || decoded.Count != 3 {
		t.Errorf("decoded %+v", decoded)
	}
	if strings.Contains(output, "comment") {
		t.Error("empty comment should be omitted")
	}
}

func TestPrintJSON_SingleLine(t *testing.T) {
	output := capture(t, func() error { return PrintJSON(sample{Name: "a<b", Count: 1}) })

	if strings.Count(output, "\n") != 1 {
		t.Errorf("compact JSON should be one line, got:\n%s", output)
	}
	if !strings.Contains(output, "a<b") {
		t.Errorf("HTML characters should not be escaped: %s", output)
	}
}

func TestFprint_Formats(t *testing.T) {
	defer func(f Format, p bool) { OutputFormat, PrettyOutput = f, p }(OutputFormat, PrettyOutput)

	tests := []struct {
		format Format
		pretty bool
		check  func(string) bool
	}{
		{FormatYAML, false, func(s string) bool { return strings.HasPrefix(s, "name: x\n") }},
		{FormatJSON, false, func(s string) bool { return s == `{"name":"x","count":2}`+"\n" }},
		{FormatJSON, true, func(s string) bool { return strings.Contains(s, "\n  \"name\": \"x\"") }},
	}
	for _, tt := range tests {
		OutputFormat, PrettyOutput = tt.format, tt.pretty
		var buf bytes.Buffer
		if err := Fprint(&buf, sample{Name: "x", Count: 2}); err != nil {
			t.Fatal(err)
		}
		if !tt.check(buf.String()) {
			t.Errorf("format %s pretty=%v: unexpected output:\n%s", tt.format, tt.pretty, buf.String())
		}
		if tt.format == FormatJSON {
			var decoded sample
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Errorf("invalid JSON: %v", err)
			}
		}
	}

	OutputFormat = "xml"
	if err := Fprint(&bytes.Buffer{}, sample{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("expected error for toml")
	}
}

func TestMarshalYAML(t *testing.T) {
	got, err := MarshalYAML(map[string]int{"b": 2, "a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got != "a: 1\nb: 2\n" {
		t.Errorf("got %q", got)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"Name", "Rect"}, [][]string{{"Main", "0,0,720,760"}, {"btn_start", "100,200,50,50"}})
	out := buf.String()
	for _, want := range []string{"Main", "0,0,720,760", "btn_start", "100,200,50,50"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Main") > strings.Index(out, "btn_start") {
		t.Errorf("rows out of order:\n%s", out)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "doc.yaml")

	if err := WriteFileAtomic(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Errorf("content: got %q, want %q", data, "two")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
