package blocks

import (
	"strings"
)

// TableMarker stands in for a table when a tree is rendered back to text.
// Tables are not reconstructed as pipe rows.
const TableMarker = "[table]"

const indentUnit = "  "

// Markdown renders a block tree back to the line dialect. Children are
// indented one unit per level and siblings are separated by a blank line.
func Markdown(tree []*Block) string {
	return renderBlocks(tree, 0)
}

func renderBlocks(tree []*Block, depth int) string {
	parts := make([]string, 0, len(tree))
	for _, b := range tree {
		if s := renderBlock(b, depth); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func renderBlock(b *Block, depth int) string {
	if b == nil {
		return ""
	}
	indent := strings.Repeat(indentUnit, depth)

	own := blockLine(b, indent)
	if own == "" {
		return ""
	}

	var result strings.Builder
	result.WriteString(indent)
	result.WriteString(own)
	if b.Type != TypeTable && len(b.Children) > 0 {
		if children := renderBlocks(b.Children, depth+1); children != "" {
			result.WriteString("\n")
			result.WriteString(children)
		}
	}
	return result.String()
}

// blockLine renders the block's own text, without indentation or children.
// Code blocks span several lines; their closing fence carries indent.
func blockLine(b *Block, indent string) string {
	switch b.Type {
	case TypeParagraph:
		return RenderRichText(b.Text)
	case TypeHeading1, TypeHeading2, TypeHeading3:
		level := b.Level
		if level < 1 || level > 3 {
			level = headingLevel(b.Type)
		}
		return strings.Repeat("#", level) + " " + RenderRichText(b.Text)
	case TypeBulletItem:
		return "- " + RenderRichText(b.Text)
	case TypeNumberedItem:
		return "1. " + RenderRichText(b.Text)
	case TypeToDo:
		if b.Checked {
			return "- [x] " + RenderRichText(b.Text)
		}
		return "- [ ] " + RenderRichText(b.Text)
	case TypeQuote:
		return "> " + RenderRichText(b.Text)
	case TypeCallout:
		icon := b.Icon
		if icon == "" {
			icon = DefaultCalloutIcon
		}
		return icon + " " + RenderRichText(b.Text)
	case TypeDivider:
		return DividerToken
	case TypeBookmark:
		if caption := RenderRichText(b.Caption); caption != "" {
			return "[" + caption + "](" + b.URL + ")"
		}
		return b.URL
	case TypeCode:
		lang := b.Language
		if lang == "" {
			lang = FallbackLanguage
		}
		return Fence + lang + "\n" + b.Code + "\n" + indent + Fence
	case TypeTable:
		return TableMarker
	case TypeToggle:
		return ToggleMarker + RenderRichText(b.Text)
	default:
		return ""
	}
}

func headingLevel(t Type) int {
	switch t {
	case TypeHeading2:
		return 2
	case TypeHeading3:
		return 3
	default:
		return 1
	}
}

// RenderRichText wraps each span in its markers, code innermost and
// strikethrough outermost, and concatenates the results.
func RenderRichText(rt RichText) string {
	var result strings.Builder
	for _, s := range rt {
		text := s.Content
		if s.Code {
			text = "`" + text + "`"
		}
		if s.Bold {
			text = "**" + text + "**"
		}
		if s.Italic {
			text = "*" + text + "*"
		}
		if s.Strikethrough {
			text = "~~" + text + "~~"
		}
		result.WriteString(text)
	}
	return result.String()
}
