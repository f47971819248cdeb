package tools

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/athapong/notion-mcp/util"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolGroups lists the groups ENABLE_TOOLS can name.
var ToolGroups = []struct {
	Name string
	Desc string
}{
	{"tool_manager", "Tool management"},
	{"notion", "Notion pages: add_to_notion, get_database, get_page, update_page"},
	{"import", "Import a web page into Notion: notion_import_url"},
	{"preview", "Markdown to Notion block preview: notion_preview_markdown"},
}

// EnabledTools returns the groups named by ENABLE_TOOLS. An empty result
// means every group is enabled.
func EnabledTools() []string {
	var out []string
	for _, name := range strings.Split(os.Getenv("ENABLE_TOOLS"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// IsEnabled reports whether a tool group is enabled.
func IsEnabled(group string) bool {
	enabled := EnabledTools()
	return len(enabled) == 0 || slices.Contains(enabled, group)
}

func RegisterToolManagerTool(s *server.MCPServer) {
	tool := mcp.NewTool("tool_manager",
		mcp.WithDescription("Manage MCP tools - enable or disable tools"),
		mcp.WithString("action", mcp.Required(), mcp.Description("Action to perform: list, enable, disable")),
		mcp.WithString("tool_name", mcp.Description("Tool name to enable/disable")),
	)

	s.AddTool(tool, util.ErrorGuard(toolManagerHandler))
}

func toolManagerHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	action, ok := arguments["action"].(string)
	if !ok {
		return mcp.NewToolResultError("action must be a string"), nil
	}

	toolList := EnabledTools()

	switch action {
	case "list":
		var response strings.Builder
		response.WriteString("Available tools:\n")
		for _, t := range ToolGroups {
			status := "disabled"
			if IsEnabled(t.Name) {
				status = "enabled"
			}
			fmt.Fprintf(&response, "- %s (%s) [%s]\n", t.Name, t.Desc, status)
		}

		response.WriteString("\nCurrently enabled tools:\n")
		if len(toolList) == 0 {
			response.WriteString("All tools are enabled (ENABLE_TOOLS is empty)\n")
		}
		for _, name := range toolList {
			fmt.Fprintf(&response, "- %s\n", name)
		}
		return mcp.NewToolResultText(response.String()), nil

	case "enable", "disable":
		toolName := util.StringArg(arguments, "tool_name")
		if toolName == "" {
			return mcp.NewToolResultError("tool_name is required for enable/disable actions"), nil
		}

		if action == "enable" {
			if !slices.Contains(toolList, toolName) {
				toolList = append(toolList, toolName)
			}
		} else {
			if len(toolList) == 0 {
				for _, t := range ToolGroups {
					toolList = append(toolList, t.Name)
				}
			}
			toolList = slices.DeleteFunc(toolList, func(s string) bool { return s == toolName })
		}
		os.Setenv("ENABLE_TOOLS", strings.Join(toolList, ","))

		return mcp.NewToolResultText(fmt.Sprintf("Successfully %sd tool: %s", action, toolName)), nil

	default:
		return mcp.NewToolResultError("Invalid action. Use 'list', 'enable', or 'disable'"), nil
	}
}
