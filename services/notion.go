package services

import (
	"os"
	"sync"

	"github.com/athapong/notion-mcp/pkg/notion"
	"github.com/sirupsen/logrus"
)

var DefaultNotionClient = sync.OnceValue(func() *notion.Client {
	apiKey := os.Getenv("NOTION_API_KEY")
	if apiKey == "" {
		panic("NOTION_API_KEY is not set, please set it in MCP Config")
	}

	return notion.NewClient(apiKey,
		notion.WithBaseURL(os.Getenv("NOTION_API_BASE")),
		notion.WithLogger(logrus.WithField("component", "notion")),
	)
})

// NotionDatabaseID returns the database new pages are created in.
func NotionDatabaseID() string {
	id := os.Getenv("NOTION_DATABASE_ID")
	if id == "" {
		panic("NOTION_DATABASE_ID is not set, please set it in MCP Config")
	}
	return id
}

// NotionSchema returns the column names, with NOTION_PROP_* overrides
// applied to the defaults.
var NotionSchema = sync.OnceValue(func() notion.Schema {
	s := notion.DefaultSchema
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&s.Title, "NOTION_PROP_TITLE")
	override(&s.Date, "NOTION_PROP_DATE")
	override(&s.Status, "NOTION_PROP_STATUS")
	override(&s.Category, "NOTION_PROP_CATEGORY")
	override(&s.Tags, "NOTION_PROP_TAGS")
	return s
})
