package blocks

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
)

// Markers of the line dialect.
const (
	ToggleMarker       = "▶ "
	QuotedToggleMarker = "> ▶ "
	Fence              = "```"
	DividerToken       = "---"
	DefaultCalloutIcon = "💡"
	variationSelector  = "\uFE0F"
)

var dividerTokens = mapset.NewSet("---", "***", "___")

// calloutRanges are the symbol and pictograph blocks accepted as callout
// icons; calloutGlyphs adds the few allowed icons outside them.
var (
	calloutRanges = []struct{ lo, hi rune }{
		{0x1F300, 0x1F9FF},
		{0x2600, 0x26FF},
		{0x2700, 0x27BF},
	}
	calloutGlyphs = mapset.NewSet('⭐', '❓', '❔', '❗')
)

var (
	numberedPrefix = regexp.MustCompile(`^\d+\.\s`)
	bookmarkLine   = regexp.MustCompile(`^\[([^\]]+)\]\((https?://[^\s)]+)\)$`)
	bareURLLine    = regexp.MustCompile(`^https?://\S+$`)
)

type lineRule struct {
	name  string
	apply func(line string) *Block
}

// lineRules is evaluated top to bottom; the first rule returning a block wins.
var lineRules = []lineRule{
	{"divider", func(line string) *Block {
		if dividerTokens.Contains(line) {
			return &Block{Type: TypeDivider}
		}
		return nil
	}},
	{"to_do", func(line string) *Block {
		switch {
		case strings.HasPrefix(line, "- [x] "), strings.HasPrefix(line, "- [X] "):
			return &Block{Type: TypeToDo, Checked: true, Text: ParseInline(line[6:])}
		case strings.HasPrefix(line, "- [ ] "):
			return &Block{Type: TypeToDo, Text: ParseInline(line[6:])}
		}
		return nil
	}},
	{"callout", func(line string) *Block {
		icon, rest, ok := splitCallout(line)
		if !ok {
			return nil
		}
		return &Block{Type: TypeCallout, Icon: icon, Text: ParseInline(rest)}
	}},
	{"quote", func(line string) *Block {
		if strings.HasPrefix(line, "> ") && !strings.HasPrefix(line, "> ▶") {
			return &Block{Type: TypeQuote, Text: ParseInline(line[2:])}
		}
		return nil
	}},
	{"heading", func(line string) *Block {
		switch {
		case strings.HasPrefix(line, "# "):
			return Heading(1, ParseInline(line[2:]))
		case strings.HasPrefix(line, "## "):
			return Heading(2, ParseInline(line[3:]))
		case strings.HasPrefix(line, "### "):
			return Heading(3, ParseInline(line[4:]))
		}
		return nil
	}},
	{"bulleted_list_item", func(line string) *Block {
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			return &Block{Type: TypeBulletItem, Text: ParseInline(line[2:])}
		}
		return nil
	}},
	{"numbered_list_item", func(line string) *Block {
		loc := numberedPrefix.FindStringIndex(line)
		if loc == nil {
			return nil
		}
		return &Block{Type: TypeNumberedItem, Text: ParseInline(line[loc[1]:])}
	}},
	{"bookmark", func(line string) *Block {
		m := bookmarkLine.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		return &Block{Type: TypeBookmark, URL: m[2], Caption: ParseInline(m[1])}
	}},
	{"url", func(line string) *Block {
		if bareURLLine.MatchString(line) {
			return &Block{Type: TypeBookmark, URL: line, Caption: RichText{}}
		}
		return nil
	}},
}

// ClassifyLine turns one trimmed, non-empty line into a block. Lines that
// match no rule become paragraphs.
func ClassifyLine(line string) *Block {
	for _, rule := range lineRules {
		if b := rule.apply(line); b != nil {
			return b
		}
	}
	return Paragraph(ParseInline(line))
}

func splitCallout(line string) (icon, rest string, ok bool) {
	r, size := utf8.DecodeRuneInString(line)
	if r == utf8.RuneError || !isCalloutGlyph(r) {
		return "", "", false
	}
	if strings.HasPrefix(line[size:], variationSelector) {
		size += len(variationSelector)
	}
	after := line[size:]
	rest = strings.TrimLeftFunc(after, unicode.IsSpace)
	if rest == "" || len(rest) == len(after) {
		return "", "", false
	}
	return line[:size], rest, true
}

func isCalloutGlyph(r rune) bool {
	for _, rg := range calloutRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return calloutGlyphs.Contains(r)
}

// isToggle reports whether a trimmed line opens a collapsible section and
// returns its title text.
func isToggle(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, ToggleMarker):
		return line[len(ToggleMarker):], true
	case strings.HasPrefix(line, QuotedToggleMarker):
		return line[len(QuotedToggleMarker):], true
	}
	return "", false
}

func isFence(line string) bool {
	return strings.HasPrefix(line, Fence)
}

func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|")
}
