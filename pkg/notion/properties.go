package notion

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Schema names the database columns the tools read and write.
type Schema struct {
	Title    string
	Date     string
	Status   string
	Category string
	Tags     string
}

// DefaultSchema matches the column names of the database the tools were
// first written against.
var DefaultSchema = Schema{
	Title:    "이름",
	Date:     "날짜",
	Status:   "상태",
	Category: "선택",
	Tags:     "다중 선택",
}

// UntitledPage is reported for pages whose title is empty.
const UntitledPage = "Untitled"

// PageProperties are the values to write. Empty fields are left untouched.
type PageProperties struct {
	Title    string
	Category string
	Status   string
	Tags     []string
	Date     *time.Time
}

// Empty reports whether no property would be written.
func (p PageProperties) Empty() bool {
	return p.Title == "" && p.Category == "" && p.Status == "" && len(p.Tags) == 0 && p.Date == nil
}

// PageSummary is what the tools report about a page.
type PageSummary struct {
	ID             string
	URL            string
	Title          string
	Status         string
	Category       string
	Tags           []string
	Date           string
	CreatedTime    string
	LastEditedTime string
}

// Build returns the properties payload for a create or update call.
func (s Schema) Build(p PageProperties) map[string]interface{} {
	props := map[string]interface{}{}
	if p.Title != "" {
		props[s.Title] = map[string]interface{}{
			"title": []map[string]interface{}{
				{"text": map[string]string{"content": p.Title}},
			},
		}
	}
	if p.Date != nil {
		props[s.Date] = map[string]interface{}{
			"date": map[string]string{"start": p.Date.Format(time.RFC3339)},
		}
	}
	if p.Status != "" {
		props[s.Status] = map[string]interface{}{
			"status": map[string]string{"name": p.Status},
		}
	}
	if p.Category != "" {
		props[s.Category] = map[string]interface{}{
			"select": map[string]string{"name": p.Category},
		}
	}
	if len(p.Tags) > 0 {
		tags := make([]map[string]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, map[string]string{"name": t})
		}
		props[s.Tags] = map[string]interface{}{"multi_select": tags}
	}
	return props
}

// Read extracts a summary from a page object.
func (s Schema) Read(page gjson.Result) PageSummary {
	props := page.Get("properties")
	summary := PageSummary{
		ID:             page.Get("id").String(),
		URL:            page.Get("url").String(),
		Status:         property(props, s.Status).Get("status.name").String(),
		Category:       property(props, s.Category).Get("select.name").String(),
		Date:           property(props, s.Date).Get("date.start").String(),
		CreatedTime:    page.Get("created_time").String(),
		LastEditedTime: page.Get("last_edited_time").String(),
		Tags:           []string{},
	}

	var title strings.Builder
	for _, t := range property(props, s.Title).Get("title").Array() {
		title.WriteString(t.Get("plain_text").String())
	}
	summary.Title = title.String()
	if summary.Title == "" {
		summary.Title = UntitledPage
	}

	for _, t := range property(props, s.Tags).Get("multi_select").Array() {
		summary.Tags = append(summary.Tags, t.Get("name").String())
	}
	return summary
}

// property looks a column up by exact name. Column names may contain
// characters that gjson treats as path syntax, so they are not used as paths.
func property(props gjson.Result, name string) gjson.Result {
	var found gjson.Result
	props.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			found = value
			return false
		}
		return true
	})
	return found
}

// Missing returns the schema columns a database object does not define,
// in schema order.
func (s Schema) Missing(database gjson.Result) []string {
	props := database.Get("properties")
	var missing []string
	for _, name := range []string{s.Title, s.Date, s.Status, s.Category, s.Tags} {
		if !property(props, name).Exists() {
			missing = append(missing, name)
		}
	}
	return missing
}
