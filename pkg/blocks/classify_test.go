package blocks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func plain(s string) RichText {
	return RichText{{Content: s}}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Block
	}{
		{"divider dashes", "---", &Block{Type: TypeDivider}},
		{"divider stars", "***", &Block{Type: TypeDivider}},
		{"divider underscores", "___", &Block{Type: TypeDivider}},
		{"checked todo", "- [x] done", &Block{Type: TypeToDo, Checked: true, Text: plain("done")}},
		{"checked todo upper", "- [X] done", &Block{Type: TypeToDo, Checked: true, Text: plain("done")}},
		{"open todo", "- [ ] later", &Block{Type: TypeToDo, Text: plain("later")}},
		{"callout", "💡 remember this", &Block{Type: TypeCallout, Icon: "💡", Text: plain("remember this")}},
		{"callout with variation selector", "\u26a0\ufe0f careful", &Block{Type: TypeCallout, Icon: "\u26a0\ufe0f", Text: plain("careful")}},
		{"callout outside ranges", "⭐ star", &Block{Type: TypeCallout, Icon: "⭐", Text: plain("star")}},
		{"emoji without text is a paragraph", "🔥", Paragraph(plain("🔥"))},
		{"quote", "> quoted **words**", &Block{Type: TypeQuote, Text: RichText{{Content: "quoted "}, {Content: "words", Bold: true}}}},
		{"quoted toggle is not a quote", "> ▶ title", Paragraph(plain("> ▶ title"))},
		{"heading 1", "# Title", &Block{Type: TypeHeading1, Level: 1, Text: plain("Title")}},
		{"heading 2", "## Title", &Block{Type: TypeHeading2, Level: 2, Text: plain("Title")}},
		{"heading 3", "### Title", &Block{Type: TypeHeading3, Level: 3, Text: plain("Title")}},
		{"heading 4 is a paragraph", "#### Title", Paragraph(plain("#### Title"))},
		{"dash bullet", "- item", &Block{Type: TypeBulletItem, Text: plain("item")}},
		{"star bullet", "* item", &Block{Type: TypeBulletItem, Text: plain("item")}},
		{"numbered", "12. twelfth", &Block{Type: TypeNumberedItem, Text: plain("twelfth")}},
		{"number without space", "3.14 is pi", Paragraph(plain("3.14 is pi"))},
		{
			"bookmark",
			"[Go](https://go.dev/doc)",
			&Block{Type: TypeBookmark, URL: "https://go.dev/doc", Caption: plain("Go")},
		},
		{"bare url", "https://example.com/a?b=c", &Block{Type: TypeBookmark, URL: "https://example.com/a?b=c", Caption: RichText{}}},
		{"url with trailing text", "https://example.com and more", Paragraph(plain("https://example.com and more"))},
		{"inline link stays text", "see [Go](https://go.dev) now", Paragraph(plain("see [Go](https://go.dev) now"))},
		{"paragraph", "hello *there*", Paragraph(RichText{{Content: "hello "}, {Content: "there", Italic: true}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLine(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ClassifyLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := map[string]string{
		"py":          "python",
		"PY":          "python",
		"js":          "javascript",
		"Go":          "go",
		"golang":      "go",
		"yml":         "yaml",
		"c++":         "cpp",
		"plain text":  "plain text",
		"txt":         FallbackLanguage,
		"unknown-xyz": FallbackLanguage,
		"":            FallbackLanguage,
		"  rust ":     "rust",
	}
	for in, want := range tests {
		if got := NormalizeLanguage(in); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
		if !IsLanguage(NormalizeLanguage(in)) {
			t.Errorf("NormalizeLanguage(%q) returned non-canonical %q", in, NormalizeLanguage(in))
		}
	}
}
