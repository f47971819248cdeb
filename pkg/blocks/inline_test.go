package blocks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RichText
	}{
		{
			name:  "plain line",
			input: "just words here",
			want:  RichText{{Content: "just words here"}},
		},
		{
			name:  "empty line",
			input: "",
			want:  RichText{{Content: ""}},
		},
		{
			name:  "bold in the middle",
			input: "a **b** c",
			want:  RichText{{Content: "a "}, {Content: "b", Bold: true}, {Content: " c"}},
		},
		{
			name:  "each wrapper",
			input: "**b***i*`c`~~s~~",
			want: RichText{
				{Content: "b", Bold: true},
				{Content: "i", Italic: true},
				{Content: "c", Code: true},
				{Content: "s", Strikethrough: true},
			},
		},
		{
			name:  "bold wins over italic at the same offset",
			input: "**x**",
			want:  RichText{{Content: "x", Bold: true}},
		},
		{
			name:  "styles do not nest",
			input: "**a *b* c**",
			want:  RichText{{Content: "a *b* c", Bold: true}},
		},
		{
			name:  "code content is not rescanned",
			input: "`**not bold**`",
			want:  RichText{{Content: "**not bold**", Code: true}},
		},
		{
			name:  "unterminated marker stays literal",
			input: "2 * 3 = 6",
			want:  RichText{{Content: "2 * 3 = 6"}},
		},
		{
			name:  "leading and trailing text",
			input: "see ~~old~~ new",
			want:  RichText{{Content: "see "}, {Content: "old", Strikethrough: true}, {Content: " new"}},
		},
		{
			name:  "non-ascii content",
			input: "한글 **굵게** 끝",
			want:  RichText{{Content: "한글 "}, {Content: "굵게", Bold: true}, {Content: " 끝"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInline(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseInline(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestRenderRichText(t *testing.T) {
	rt := RichText{
		{Content: "a"},
		{Content: "b", Bold: true},
		{Content: "c", Code: true, Bold: true},
		{Content: "d", Italic: true, Strikethrough: true},
	}
	want := "a**b****`c`**~~*d*~~"
	if got := RenderRichText(rt); got != want {
		t.Errorf("RenderRichText() = %q, want %q", got, want)
	}
}

func TestRichTextText(t *testing.T) {
	rt := RichText{{Content: "x"}, {Content: "y", Bold: true}}
	if got := rt.Text(); got != "xy" {
		t.Errorf("Text() = %q, want %q", got, "xy")
	}
}
