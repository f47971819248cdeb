package tools

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// summarizeChanges reports which markdown lines a content update removed
// and added. Unchanged lines are left out.
func summarizeChanges(before, after string) string {
	if before == after {
		return "Content unchanged."
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var (
		body           strings.Builder
		added, removed int
	)
	for _, diff := range diffs {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			if prefix == "+ " {
				added++
			} else {
				removed++
			}
			body.WriteString(prefix + line + "\n")
		}
	}

	return fmt.Sprintf("Content changes (%d added, %d removed):\n%s", added, removed, strings.TrimSuffix(body.String(), "\n"))
}
