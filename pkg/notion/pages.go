package notion

import (
	"context"
	"net/http"

	"github.com/athapong/notion-mcp/pkg/blocks"
	"github.com/tidwall/gjson"
)

// Page identifies a page after a write.
type Page struct {
	ID  string
	URL string
}

func pageFrom(r gjson.Result) *Page {
	return &Page{ID: r.Get("id").String(), URL: r.Get("url").String()}
}

// CreatePage creates a page in a database with the given properties and
// body. Children beyond the per-request limit are appended afterwards.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props map[string]interface{}, children []*blocks.Block) (*Page, error) {
	first, rest := children, []*blocks.Block(nil)
	if len(children) > pageSize {
		first, rest = children[:pageSize], children[pageSize:]
	}

	payload := map[string]interface{}{
		"parent":     map[string]string{"database_id": databaseID},
		"properties": props,
	}
	if len(first) > 0 {
		payload["children"] = first
	}

	res, err := c.do(ctx, "create_page", http.MethodPost, "/pages", payload)
	if err != nil {
		return nil, err
	}
	page := pageFrom(res)

	if len(rest) > 0 {
		if err := c.AppendChildren(ctx, page.ID, rest); err != nil {
			return page, err
		}
	}
	return page, nil
}

// RetrievePage returns the raw page object, properties included.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (gjson.Result, error) {
	return c.do(ctx, "retrieve_page", http.MethodGet, "/pages/"+pageID, nil)
}

// UpdatePageProperties patches the given properties and leaves the rest.
func (c *Client) UpdatePageProperties(ctx context.Context, pageID string, props map[string]interface{}) (*Page, error) {
	res, err := c.do(ctx, "update_page", http.MethodPatch, "/pages/"+pageID, map[string]interface{}{
		"properties": props,
	})
	if err != nil {
		return nil, err
	}
	return pageFrom(res), nil
}

// QueryDatabase returns every page of a database, following cursors.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string) ([]gjson.Result, error) {
	return paginate(func(cursor string) (gjson.Result, error) {
		body := map[string]interface{}{"page_size": pageSize}
		if cursor != "" {
			body["start_cursor"] = cursor
		}
		return c.do(ctx, "query_database", http.MethodPost, "/databases/"+databaseID+"/query", body)
	})
}

// RetrieveDatabase returns the database object, including its property schema.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (gjson.Result, error) {
	return c.do(ctx, "retrieve_database", http.MethodGet, "/databases/"+databaseID, nil)
}
