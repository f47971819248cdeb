package blocks

import (
	"strings"
	"unicode"
)

// rootIndent is the baseline of the document scope. Every line is indented
// past it, so the root scope only ends with the input.
const rootIndent = -1

// Parse converts markdown dialect text into a block tree. It never fails:
// malformed constructs degrade to the closest block it can build.
func Parse(text string) []*Block {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	tree, _ := parseScope(lines, 0, rootIndent)
	return tree
}

// parseScope collects the blocks that belong to a scope whose header sits at
// indentation baseline. It stops at the first non-blank line indented at or
// above the baseline, without consuming it, and returns the position to
// resume from.
func parseScope(lines []string, pos, baseline int) ([]*Block, int) {
	var out []*Block
	for pos < len(lines) {
		line := lines[pos]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pos++
			continue
		}

		indent := indentOf(line)
		if indent <= baseline {
			break
		}

		if title, ok := isToggle(trimmed); ok {
			var toggle *Block
			toggle, pos = parseToggle(lines, pos, indent, title)
			out = append(out, toggle)
			continue
		}

		var b *Block
		b, pos = parseBlock(lines, pos, baseline)
		if b != nil {
			out = append(out, b)
		}
	}
	return out, pos
}

// parseToggle reads the toggle header at pos and its indented children.
func parseToggle(lines []string, pos, indent int, title string) (*Block, int) {
	children, next := parseScope(lines, pos+1, indent)
	if len(children) == 0 {
		children = []*Block{emptyParagraph()}
	}
	return &Block{Type: TypeToggle, Text: ParseInline(title), Children: children}, next
}

// parseBlock handles one non-toggle construct starting at pos: a fenced code
// block, a table run, or a single classified line.
func parseBlock(lines []string, pos, baseline int) (*Block, int) {
	trimmed := strings.TrimSpace(lines[pos])
	switch {
	case isFence(trimmed):
		return parseCode(lines, pos)
	case isTableRow(trimmed):
		return parseTable(lines, pos, baseline)
	default:
		return ClassifyLine(trimmed), pos + 1
	}
}

// parseCode collects raw lines up to the closing fence. An unterminated
// fence runs to the end of input.
func parseCode(lines []string, pos int) (*Block, int) {
	lang := NormalizeLanguage(strings.TrimSpace(strings.TrimSpace(lines[pos])[len(Fence):]))
	pos++

	var body []string
	for pos < len(lines) {
		if strings.TrimSpace(lines[pos]) == Fence {
			pos++
			break
		}
		body = append(body, lines[pos])
		pos++
	}
	return &Block{Type: TypeCode, Language: lang, Code: strings.Join(body, "\n")}, pos
}

// parseTable gathers consecutive pipe-delimited rows indented past the
// baseline and hands them to BuildTable.
func parseTable(lines []string, pos, baseline int) (*Block, int) {
	start := pos
	for pos < len(lines) {
		if !isTableRow(strings.TrimSpace(lines[pos])) || indentOf(lines[pos]) <= baseline {
			break
		}
		pos++
	}
	return BuildTable(lines[start:pos]), pos
}

// indentOf counts leading whitespace characters; a tab counts as one.
func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
