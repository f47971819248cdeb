package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/athapong/notion-mcp/pkg/blocks"
	"github.com/athapong/notion-mcp/util"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func RegisterPreviewTool(s *server.MCPServer) {
	tool := mcp.NewTool("notion_preview_markdown",
		mcp.WithDescription("Shows how markdown would be stored in Notion without writing anything: the block JSON and the markdown it reads back as."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Markdown to convert")),
	)
	s.AddTool(tool, util.ErrorGuard(previewHandler))
}

func previewHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, ok := request.Params.Arguments["content"].(string)
	if !ok {
		return mcp.NewToolResultError("content must be a string"), nil
	}

	tree := blocks.Parse(content)
	if tree == nil {
		tree = []*blocks.Block{}
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Blocks (%d):\n```json\n%s\n```\n\nReads back as:\n%s", blocks.Count(tree), data, blocks.Markdown(tree))
	return mcp.NewToolResultText(text), nil
}
