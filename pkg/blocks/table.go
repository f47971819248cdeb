package blocks

import (
	"strings"
	"unicode"
)

// BuildTable turns a run of pipe-delimited lines into a table block.
// Header separator rows (|---|:--:|) are dropped. It returns nil when no
// data rows are left.
func BuildTable(lines []string) *Block {
	var rows [][]string
	for _, line := range lines {
		cells := splitRow(strings.TrimSpace(line))
		if isSeparatorRow(cells) {
			continue
		}
		for i, c := range cells {
			cells[i] = strings.TrimSpace(c)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	table := &Table{
		Width:           width,
		HasColumnHeader: true,
		Rows:            make([][]RichText, 0, len(rows)),
	}
	for _, row := range rows {
		cells := make([]RichText, width)
		for i := range cells {
			if i < len(row) {
				cells[i] = ParseInline(row[i])
			} else {
				cells[i] = RichText{{Content: ""}}
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	return &Block{Type: TypeTable, Table: table}
}

func splitRow(line string) []string {
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return nil
	}
	return fields[1 : len(fields)-1]
}

// isSeparatorRow reports whether every raw cell is a non-empty run of
// dashes, colons and whitespace.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if c == "" || strings.TrimFunc(c, isSeparatorRune) != "" {
			return false
		}
	}
	return true
}

func isSeparatorRune(r rune) bool {
	return r == '-' || r == ':' || unicode.IsSpace(r)
}
