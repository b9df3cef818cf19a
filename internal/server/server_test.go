package server

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "design.yaml")
	return New(Config{DocumentPath: path, Defaults: edit.ModelDefaults()}), path
}

func call(t *testing.T, s *Server, name string, args map[string]interface{}) (string, bool) {
	t.Helper()
	res, err := s.Call(context.Background(), name, args)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text, res.IsError
}

func TestNew_RegistersTools(t *testing.T) {
	s, _ := newTestServer(t)
	got := s.ToolNames()
	sort.Strings(got)
	want := []string{
		"add_action", "add_region", "clear_swipe", "delete_region", "export_json", "export_lua",
		"get_document", "move_action", "remove_action", "reset", "set_screen", "set_swipe",
	}
	assert.Equal(t, want, got)
}

func TestTools_EditAndExport(t *testing.T) {
	s, path := newTestServer(t)

	_, isErr := call(t, s, "set_screen", map[string]interface{}{"width": 1080.0, "height": 1920.0})
	require.False(t, isErr)
	_, isErr = call(t, s, "add_region", map[string]interface{}{"name": "btn_start", "x": 100.0, "y": 200.0, "w": 50.0, "h": 50.0})
	require.False(t, isErr)
	text, isErr := call(t, s, "add_action", map[string]interface{}{"type": "ClickImage", "region": "btn_start", "threshold": 0.85, "timeout": 5.0})
	require.False(t, isErr, text)

	var result edit.StepResult
	require.NoError(t, yaml.Unmarshal([]byte(text), &result))
	assert.True(t, result.OK)
	assert.Equal(t, "add_action", result.Action)
	assert.Equal(t, 1, result.Actions)

	doc, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())

	lua, isErr := call(t, s, "export_lua", nil)
	require.False(t, isErr)
	assert.Contains(t, lua, "clickimage(100, 200, 50, 50, 0.85, 5)")

	out := filepath.Join(t.TempDir(), "script.json")
	js, isErr := call(t, s, "export_json", map[string]interface{}{"output": out})
	require.False(t, isErr)
	assert.Contains(t, js, `"threshold": 0.85`)
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, js, string(written))
}

func TestTools_ErrorLeavesFileUntouched(t *testing.T) {
	s, path := newTestServer(t)
	_, isErr := call(t, s, "add_action", map[string]interface{}{"type": "wait", "duration": 2.0})
	require.False(t, isErr)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	text, isErr := call(t, s, "add_region", map[string]interface{}{"name": "Main", "rect": "0,0,10,10"})
	assert.True(t, isErr)
	assert.Contains(t, text, "duplicate region name")

	text, isErr = call(t, s, "remove_action", map[string]interface{}{"index": 5.0})
	assert.True(t, isErr)
	assert.Contains(t, text, "index out of range")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestTools_GetDocument(t *testing.T) {
	s, _ := newTestServer(t)
	text, isErr := call(t, s, "get_document", nil)
	require.False(t, isErr)

	var summary edit.Summary
	require.NoError(t, yaml.Unmarshal([]byte(text), &summary))
	assert.Equal(t, model.DefaultScreen(), summary.Screen)
	assert.Len(t, summary.Regions, len(model.PresetRegions(model.DefaultScreen())))
	assert.Empty(t, summary.Actions)
}

func TestTools_SwipeAndReset(t *testing.T) {
	s, path := newTestServer(t)
	_, isErr := call(t, s, "set_swipe", map[string]interface{}{"from": "100,1400", "to": "100,200", "duration": 0.6})
	require.False(t, isErr)
	_, isErr = call(t, s, "add_action", map[string]interface{}{"type": "swipe"})
	require.False(t, isErr)

	lua, _ := call(t, s, "export_lua", nil)
	assert.Contains(t, lua, "swipe(100, 1400, 100, 200, 0.6)")

	_, isErr = call(t, s, "clear_swipe", nil)
	require.False(t, isErr)
	lua, _ = call(t, s, "export_lua", nil)
	assert.Contains(t, lua, "-- swipe skipped")

	_, isErr = call(t, s, "reset", nil)
	require.False(t, isErr)
	doc, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.New(), doc)
}

func TestTools_MoveAndDelete(t *testing.T) {
	s, _ := newTestServer(t)
	for _, msg := range []string{"a", "b", "c"} {
		_, isErr := call(t, s, "add_action", map[string]interface{}{"type": "log", "message": msg})
		require.False(t, isErr)
	}
	_, isErr := call(t, s, "move_action", map[string]interface{}{"from": 2.0, "to": 0.0})
	require.False(t, isErr)
	_, isErr = call(t, s, "add_action", map[string]interface{}{"type": "click", "region": "Main"})
	require.False(t, isErr)
	_, isErr = call(t, s, "delete_region", map[string]interface{}{"name": "Main"})
	require.False(t, isErr)

	lua, _ := call(t, s, "export_lua", nil)
	_, body, _ := strings.Cut(lua, "-- Actions\n")
	assert.Equal(t, "log(\"c\")\nlog(\"a\")\nlog(\"b\")\n-- clickimage skipped: no region assigned\n", body)
}

func TestCall_UnknownTool(t *testing.T) {
	s, _ := newTestServer(t)
	res, err := s.Call(context.Background(), "nope", nil)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
