package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// dialect describes the markdown the converter understands.
const dialect = `Write the body with one block per line:
- "# ", "## ", "### " headings
- "- " bullets, "1. " numbered items, "- [ ] " / "- [x] " to-dos
- "> " quotes, a leading emoji for callouts (e.g. "💡 tip")
- "---" dividers, fenced code blocks with a language tag
- "| a | b |" tables, a bare URL or "[caption](url)" for bookmarks
- "▶ title" opens a toggle; indent its content by two spaces
Inline: **bold**, *italic*, ` + "`code`" + `, ~~strike~~.`

func RegisterNotionPrompts(s *server.MCPServer) {
	prompt := mcp.NewPrompt("notion_note",
		mcp.WithPromptDescription("Write a note about a topic and save it to Notion"),
		mcp.WithArgument("topic", mcp.ArgumentDescription("What the note is about"), mcp.RequiredArgument()),
		mcp.WithArgument("category", mcp.ArgumentDescription("Category to file the note under")),
	)
	s.AddPrompt(prompt, notionNoteHandler)
}

func notionNoteHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := request.Params.Arguments["topic"]
	if topic == "" {
		return nil, fmt.Errorf("topic argument is required")
	}

	instruction := fmt.Sprintf("Write a concise, well structured note about %s and save it with the add_to_notion tool.", topic)
	if category := request.Params.Arguments["category"]; category != "" {
		instruction += fmt.Sprintf(" Use the category %q.", category)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Notion note about %s", topic),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: instruction + "\n\n" + dialect,
				},
			},
		},
	}, nil
}
