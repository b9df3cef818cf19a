package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	// get_document
	s.addTool(
		mcp.NewTool("get_document",
			mcp.WithDescription("Return the current design document: screen, regions, swipe and the numbered action list"),
		),
		s.handleGetDocument,
	)

	// set_screen
	s.addTool(
		mcp.NewTool("set_screen",
			mcp.WithDescription("Set the target screen resolution. Regions keep their coordinates; ones that no longer fit are reported."),
			mcp.WithNumber("width", mcp.Required(), mcp.Description("Screen width in pixels")),
			mcp.WithNumber("height", mcp.Required(), mcp.Description("Screen height in pixels")),
		),
		s.editHandler("set_screen"),
	)

	// add_region
	s.addTool(
		mcp.NewTool("add_region",
			mcp.WithDescription("Add a named rectangular region. It must fit inside the screen and its name must be unique."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Region name")),
			mcp.WithString("rect", mcp.Description("Rectangle as \"x,y,w,h\" (alternative to x, y, w, h)")),
			mcp.WithNumber("x", mcp.Description("Left edge")),
			mcp.WithNumber("y", mcp.Description("Top edge")),
			mcp.WithNumber("w", mcp.Description("Width")),
			mcp.WithNumber("h", mcp.Description("Height")),
			mcp.WithBoolean("click_constrained", mcp.Description("Clamp swipe points targeting this region into it")),
		),
		s.editHandler("add_region"),
	)

	// delete_region
	s.addTool(
		mcp.NewTool("delete_region",
			mcp.WithDescription("Delete a region. Actions and the swipe that used it stay in place, unassigned."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Region name")),
		),
		s.editHandler("delete_region"),
	)

	// set_swipe
	s.addTool(
		mcp.NewTool("set_swipe",
			mcp.WithDescription("Set the swipe gesture from one point to another"),
			mcp.WithString("from", mcp.Required(), mcp.Description("Start point as \"x,y\"")),
			mcp.WithString("to", mcp.Required(), mcp.Description("End point as \"x,y\"")),
			mcp.WithString("region", mcp.Description("Target region; points are clamped into it when it is click-constrained")),
			mcp.WithNumber("duration", mcp.Description("Gesture duration in seconds")),
		),
		s.editHandler("set_swipe"),
	)

	// clear_swipe
	s.addTool(
		mcp.NewTool("clear_swipe",
			mcp.WithDescription("Remove the swipe gesture"),
		),
		s.editHandler("clear_swipe"),
	)

	// add_action
	s.addTool(
		mcp.NewTool("add_action",
			mcp.WithDescription("Add an action to the script. Types: Click, ClickImage, ImageExists, Wait, Swipe, Log, KeyEvent."),
			mcp.WithString("type", mcp.Required(), mcp.Description("Action type")),
			mcp.WithString("region", mcp.Description("Target region for Click, ClickImage and ImageExists")),
			mcp.WithString("image", mcp.Description("Template image file name for image matching")),
			mcp.WithNumber("threshold", mcp.Description("Match threshold 0-1 (default 0.9)")),
			mcp.WithNumber("timeout", mcp.Description("Match timeout in seconds (default 15)")),
			mcp.WithNumber("duration", mcp.Description("Wait duration in seconds (default 1)")),
			mcp.WithString("message", mcp.Description("Log message")),
			mcp.WithString("key", mcp.Description("Key name (back, home, enter, ...) or Android key code")),
			mcp.WithNumber("index", mcp.Description("0-based insert position (default: append)")),
		),
		s.editHandler("add_action"),
	)

	// remove_action
	s.addTool(
		mcp.NewTool("remove_action",
			mcp.WithDescription("Remove the action at a 0-based index"),
			mcp.WithNumber("index", mcp.Required(), mcp.Description("Action index")),
		),
		s.editHandler("remove_action"),
	)

	// move_action
	s.addTool(
		mcp.NewTool("move_action",
			mcp.WithDescription("Move an action so it ends up at a new 0-based index"),
			mcp.WithNumber("from", mcp.Required(), mcp.Description("Current index")),
			mcp.WithNumber("to", mcp.Required(), mcp.Description("New index")),
		),
		s.editHandler("move_action"),
	)

	// reset
	s.addTool(
		mcp.NewTool("reset",
			mcp.WithDescription("Restore the default screen and preset regions and clear the swipe and all actions"),
		),
		s.editHandler("reset"),
	)

	// export_lua
	s.addTool(
		mcp.NewTool("export_lua",
			mcp.WithDescription("Render the document as a Lua automation script"),
			mcp.WithString("output", mcp.Description("Also write the script to this file")),
		),
		s.handleExportLua,
	)

	// export_json
	s.addTool(
		mcp.NewTool("export_json",
			mcp.WithDescription("Render the document as ZomBroX JSON"),
			mcp.WithString("output", mcp.Description("Also write the JSON to this file")),
		),
		s.handleExportJSON,
	)
}
