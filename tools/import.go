package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/athapong/notion-mcp/services"
	"github.com/athapong/notion-mcp/util"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
)

// Overridden in tests.
var httpClientFor = services.DefaultHttpClient

func RegisterImportTool(s *server.MCPServer) {
	tool := mcp.NewTool("notion_import_url",
		mcp.WithDescription("Fetches a web page, converts it to markdown and saves it as a new page in the Notion database. The page <title> is used when no title is given."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The complete HTTP/HTTPS URL to import (e.g., https://example.com)"),
		),
		mcp.WithString("title", mcp.Description("Page title (optional)")),
		mcp.WithString("category", mcp.Description("Category (optional)")),
		mcp.WithArray("tags", mcp.Description("Tags (optional)"), mcp.Items(map[string]interface{}{"type": "string"})),
		mcp.WithString("status", mcp.Description("Status (optional)")),
	)

	s.AddTool(tool, util.ErrorGuard(importURLHandler))
}

func importURLHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	url := util.StringArg(arguments, "url")
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return mcp.NewToolResultError("url must be an http or https URL"), nil
	}

	body, err := fetchPage(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch URL: %s", err)), nil
	}

	title := util.StringArg(arguments, "title")
	if title == "" {
		title = pageTitle(body, url)
	}

	mdContent, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to convert HTML to Markdown: %v", err)), nil
	}

	page, count, err := createPage(ctx, propertiesFrom(arguments, title), mdContent)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf("Imported %s as %q with %d blocks.\nURL: %s", url, title, count, page.URL)), nil
}

func fetchPage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClientFor().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}

// pageTitle returns the document <title>, or fallback when there is none.
func pageTitle(html []byte, fallback string) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return fallback
	}
	if title := strings.Join(strings.Fields(doc.Find("title").First().Text()), " "); title != "" {
		return title
	}
	return fallback
}
