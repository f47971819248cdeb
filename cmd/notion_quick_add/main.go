package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/athapong/notion-mcp/pkg/blocks"
	"github.com/athapong/notion-mcp/pkg/notion"
	"github.com/athapong/notion-mcp/services"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

var (
	envFile  = flag.String("env", ".env", "Path to environment file")
	file     = flag.String("file", "", "Markdown file to add; the first line is the title")
	category = flag.String("category", "", "Category of the new page")
	tags     = flag.String("tags", "", "Comma separated tags of the new page")
	status   = flag.String("status", "", "Status of the new page")
	check    = flag.Bool("check", false, "Check the connection and the database columns, then exit")
	logLevel = flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n  notion_quick_add [flags] \"Title\" \"Content\"\n  notion_quick_add [flags] -file note.md\n  notion_quick_add -check\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Configure logging
	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(level)

	if err := godotenv.Load(*envFile); err != nil {
		logger.Debugf("No env file loaded from %s: %v", *envFile, err)
	}
	for _, key := range []string{"NOTION_API_KEY", "NOTION_DATABASE_ID"} {
		if os.Getenv(key) == "" {
			logger.Fatalf("%s is not set; check your .env file", key)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := services.DefaultNotionClient()
	databaseID := services.NotionDatabaseID()

	if *check {
		if err := checkDatabase(ctx, logger, client, databaseID); err != nil {
			logger.Fatalf("Database check failed: %v", err)
		}
		return
	}

	var title, content string
	switch {
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			logger.Fatalf("Failed to read %s: %v", *file, err)
		}
		title, content = splitNote(string(data))
	case flag.NArg() >= 2:
		title, content = flag.Arg(0), flag.Arg(1)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if title == "" {
		logger.Fatal("A title is required")
	}

	tree := blocks.Parse(content)
	now := time.Now()
	props := services.NotionSchema().Build(notion.PageProperties{
		Title:    title,
		Category: *category,
		Status:   *status,
		Tags:     splitTags(*tags),
		Date:     &now,
	})

	logger.WithFields(logrus.Fields{
		"title":  title,
		"blocks": blocks.Count(tree),
	}).Info("Creating page")

	page, err := client.CreatePage(ctx, databaseID, props, tree)
	if err != nil {
		logger.Fatalf("Failed to create page: %v", err)
	}
	fmt.Println(page.URL)
}

// splitNote takes the first line of a note as its title, without leading
// heading marks, and the rest as its body.
func splitNote(text string) (title, body string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	first, rest, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(first), "#")), rest
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func checkDatabase(ctx context.Context, logger *logrus.Logger, client *notion.Client, databaseID string) error {
	db, err := client.RetrieveDatabase(ctx, databaseID)
	if err != nil {
		return err
	}

	var name strings.Builder
	for _, t := range db.Get("title").Array() {
		name.WriteString(t.Get("plain_text").String())
	}
	logger.WithField("database", name.String()).Info("Database reachable")

	db.Get("properties").ForEach(func(key, value gjson.Result) bool {
		logger.Infof("  - %s: %s", key.String(), value.Get("type").String())
		return true
	})

	if missing := services.NotionSchema().Missing(db); len(missing) > 0 {
		logger.Warnf("Columns not found in the database: %s (set NOTION_PROP_* to map them)", strings.Join(missing, ", "))
	}
	return nil
}
