package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/athapong/notion-mcp/pkg/blocks"
	"github.com/athapong/notion-mcp/pkg/metrics"
	"github.com/athapong/notion-mcp/pkg/notion"
	"github.com/athapong/notion-mcp/services"
	"github.com/athapong/notion-mcp/util"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// notionStore is the part of the Notion client the tools use.
type notionStore interface {
	CreatePage(ctx context.Context, databaseID string, props map[string]interface{}, children []*blocks.Block) (*notion.Page, error)
	QueryDatabase(ctx context.Context, databaseID string) ([]gjson.Result, error)
	RetrievePage(ctx context.Context, pageID string) (gjson.Result, error)
	UpdatePageProperties(ctx context.Context, pageID string, props map[string]interface{}) (*notion.Page, error)
	BlockTree(ctx context.Context, blockID string) ([]*blocks.Block, error)
	ReplaceChildren(ctx context.Context, blockID string, children []*blocks.Block) (int, error)
}

// Overridden in tests.
var (
	notionStoreFor = func() notionStore { return services.DefaultNotionClient() }
	databaseIDFor  = services.NotionDatabaseID
	schemaFor      = services.NotionSchema
	now            = time.Now
)

const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
	noValue        = "none"
	noContent      = "(no content)"
)

func RegisterNotionTools(s *server.MCPServer) {
	addTool := mcp.NewTool("add_to_notion",
		mcp.WithDescription("Add markdown content to the Notion database as a new page. Takes a title and a body and returns the URL of the created page."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Page title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Page body in markdown (or HTML when content_format is html)")),
		mcp.WithString("category", mcp.Description("Category (optional)")),
		mcp.WithArray("tags", mcp.Description("Tags (optional)"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("status", mcp.Description("Status (optional)")),
		mcp.WithString("content_format", mcp.Description("Format of content: markdown (default) or html"), mcp.Enum(formatMarkdown, formatHTML)),
	)
	s.AddTool(addTool, util.ErrorGuard(addToNotionHandler))

	databaseTool := mcp.NewTool("get_database",
		mcp.WithDescription("List every page of the Notion database with its title, id, status, category and tags."),
	)
	s.AddTool(databaseTool, util.ErrorGuard(getDatabaseHandler))

	pageTool := mcp.NewTool("get_page",
		mcp.WithDescription("Read a Notion page. Returns its title, properties and body as markdown."),
		mcp.WithString("page_id", mcp.Required(), mcp.Description("Notion page ID (32 hex digits, hyphenated UUID or page URL)")),
	)
	s.AddTool(pageTool, util.ErrorGuard(getPageHandler))

	updateTool := mcp.NewTool("update_page",
		mcp.WithDescription("Update an existing Notion page. The body, title, category, tags and status can each be changed; a new body replaces the old one."),
		mcp.WithString("page_id", mcp.Required(), mcp.Description("ID of the page to update")),
		mcp.WithString("content", mcp.Description("New markdown body (optional)")),
		mcp.WithString("title", mcp.Description("New title (optional)")),
		mcp.WithString("category", mcp.Description("New category (optional)")),
		mcp.WithArray("tags", mcp.Description("New tags (optional)"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("status", mcp.Description("New status (optional)")),
	)
	s.AddTool(updateTool, util.ErrorGuard(updatePageHandler))
}

func addToNotionHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	title := util.StringArg(arguments, "title")
	if title == "" {
		return mcp.NewToolResultError("title must be a non-empty string"), nil
	}
	content, ok := arguments["content"].(string)
	if !ok {
		return mcp.NewToolResultError("content must be a string"), nil
	}

	switch format := util.StringArg(arguments, "content_format"); format {
	case "", formatMarkdown:
	case formatHTML:
		md, err := htmltomarkdown.ConvertString(content)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to convert HTML to Markdown: %v", err)), nil
		}
		content = md
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported content_format %q, use markdown or html", format)), nil
	}

	page, count, err := createPage(ctx, propertiesFrom(arguments, title), content)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf("Notion page created with %d blocks.\nURL: %s", count, page.URL)), nil
}

// createPage converts markdown and creates a page stamped with the current
// time. It returns the number of blocks written.
func createPage(ctx context.Context, props notion.PageProperties, markdown string) (*notion.Page, int, error) {
	tree := blocks.Parse(markdown)
	metrics.ObserveBlocks(metrics.FromMarkdown, tree)

	t := now()
	props.Date = &t
	page, err := notionStoreFor().CreatePage(ctx, databaseIDFor(), schemaFor().Build(props), tree)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to create page")
	}

	count := blocks.Count(tree)
	logrus.WithFields(logrus.Fields{
		"page_id": page.ID,
		"blocks":  count,
	}).Info("page created")
	return page, count, nil
}

func getDatabaseHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pages, err := notionStoreFor().QueryDatabase(ctx, databaseIDFor())
	if err != nil {
		return nil, errors.Wrap(err, "failed to query database")
	}

	schema := schemaFor()
	summaries := make([]notion.PageSummary, 0, len(pages))
	for _, p := range pages {
		summaries = append(summaries, schema.Read(p))
	}
	return mcp.NewToolResultText(formatDatabase(summaries)), nil
}

func formatDatabase(pages []notion.PageSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The database has %d pages.", len(pages))
	for i, p := range pages {
		fmt.Fprintf(&sb, "\n\n%d. **%s**\n", i+1, p.Title)
		fmt.Fprintf(&sb, "   - ID: %s\n", p.ID)
		fmt.Fprintf(&sb, "   - Status: %s\n", orNone(p.Status))
		fmt.Fprintf(&sb, "   - Category: %s\n", orNone(p.Category))
		fmt.Fprintf(&sb, "   - Tags: %s", orNone(strings.Join(p.Tags, ", ")))
	}
	return sb.String()
}

func getPageHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := notion.NormalizeID(util.StringArg(request.Params.Arguments, "page_id"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	store := notionStoreFor()
	raw, err := store.RetrievePage(ctx, pageID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve page")
	}
	tree, err := store.BlockTree(ctx, pageID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read page content")
	}
	metrics.ObserveBlocks(metrics.ToMarkdown, tree)

	return mcp.NewToolResultText(formatPage(schemaFor().Read(raw), blocks.Markdown(tree))), nil
}

func formatPage(p notion.PageSummary, body string) string {
	if body == "" {
		body = noContent
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", p.Title)
	fmt.Fprintf(&sb, "**Status:** %s\n", orNone(p.Status))
	fmt.Fprintf(&sb, "**Category:** %s\n", orNone(p.Category))
	fmt.Fprintf(&sb, "**Tags:** %s\n", orNone(strings.Join(p.Tags, ", ")))
	if p.Date != "" {
		fmt.Fprintf(&sb, "**Date:** %s\n", p.Date)
	}
	fmt.Fprintf(&sb, "\n---\n\n%s\n\n---\nURL: %s", body, p.URL)
	return sb.String()
}

func updatePageHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	pageID, err := notion.NormalizeID(util.StringArg(arguments, "page_id"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	store := notionStoreFor()
	log := logrus.WithField("page_id", pageID)
	var (
		url     string
		changes string
	)

	if content, _ := arguments["content"].(string); strings.TrimSpace(content) != "" {
		before, err := store.BlockTree(ctx, pageID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read current content")
		}
		tree := blocks.Parse(content)
		metrics.ObserveBlocks(metrics.FromMarkdown, tree)

		removed, err := store.ReplaceChildren(ctx, pageID, tree)
		if err != nil {
			return nil, errors.Wrap(err, "failed to replace content")
		}
		log.WithFields(logrus.Fields{"removed": removed, "added": len(tree)}).Info("page content replaced")
		changes = summarizeChanges(blocks.Markdown(before), blocks.Markdown(tree))
	}

	props := propertiesFrom(arguments, util.StringArg(arguments, "title"))
	if !props.Empty() {
		page, err := store.UpdatePageProperties(ctx, pageID, schemaFor().Build(props))
		if err != nil {
			return nil, errors.Wrap(err, "failed to update properties")
		}
		url = page.URL
		log.Info("page properties updated")
	}

	if url == "" {
		raw, err := store.RetrievePage(ctx, pageID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to retrieve page")
		}
		url = raw.Get("url").String()
	}

	text := "Notion page updated.\nURL: " + url
	if changes != "" {
		text += "\n\n" + changes
	}
	return mcp.NewToolResultText(text), nil
}

// propertiesFrom reads the optional property arguments shared by the
// create and update tools.
func propertiesFrom(arguments map[string]interface{}, title string) notion.PageProperties {
	return notion.PageProperties{
		Title:    title,
		Category: util.StringArg(arguments, "category"),
		Status:   util.StringArg(arguments, "status"),
		Tags:     util.StringListArg(arguments, "tags"),
	}
}

func orNone(s string) string {
	if s == "" {
		return noValue
	}
	return s
}
