package notion

import (
	"context"
	"net/http"
	"net/url"

	"github.com/athapong/notion-mcp/pkg/blocks"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ListChildren returns the raw child block objects of a page or block,
// following cursors. Only direct children are returned.
func (c *Client) ListChildren(ctx context.Context, blockID string) ([]gjson.Result, error) {
	return paginate(func(cursor string) (gjson.Result, error) {
		q := url.Values{}
		q.Set("page_size", "100")
		if cursor != "" {
			q.Set("start_cursor", cursor)
		}
		return c.do(ctx, "list_children", http.MethodGet, "/blocks/"+blockID+"/children?"+q.Encode(), nil)
	})
}

// BlockTree fetches the children of blockID as a block tree, descending
// into every block that reports has_children.
func (c *Client) BlockTree(ctx context.Context, blockID string) ([]*blocks.Block, error) {
	raw, err := c.ListChildren(ctx, blockID)
	if err != nil {
		return nil, err
	}

	tree := make([]*blocks.Block, 0, len(raw))
	for _, r := range raw {
		b := blocks.DecodeBlock(r)
		if r.Get("has_children").Bool() {
			children, err := c.BlockTree(ctx, r.Get("id").String())
			if err != nil {
				return nil, err
			}
			blocks.AttachChildren(b, children)
		}
		tree = append(tree, b)
	}
	return tree, nil
}

// AppendChildren appends blocks under blockID in batches the API accepts.
func (c *Client) AppendChildren(ctx context.Context, blockID string, children []*blocks.Block) error {
	for i := 0; i < len(children); i += pageSize {
		end := i + pageSize
		if end > len(children) {
			end = len(children)
		}

		_, err := c.do(ctx, "append_children", http.MethodPatch, "/blocks/"+blockID+"/children", map[string]interface{}{
			"children": children[i:end],
		})
		if err != nil {
			return errors.Wrapf(err, "append batch %d-%d", i, end)
		}
	}
	return nil
}

// DeleteBlock archives a block.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) error {
	_, err := c.do(ctx, "delete_block", http.MethodDelete, "/blocks/"+blockID, nil)
	return err
}

// ReplaceChildren deletes every direct child of blockID and appends the
// new tree. It returns how many blocks were removed.
func (c *Client) ReplaceChildren(ctx context.Context, blockID string, children []*blocks.Block) (int, error) {
	existing, err := c.ListChildren(ctx, blockID)
	if err != nil {
		return 0, err
	}
	for i, r := range existing {
		if err := c.DeleteBlock(ctx, r.Get("id").String()); err != nil {
			return i, err
		}
	}
	if err := c.AppendChildren(ctx, blockID, children); err != nil {
		return len(existing), err
	}
	return len(existing), nil
}
