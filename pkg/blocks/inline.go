package blocks

import "regexp"

// Alternation order is the tie-break when two wrappers start at the same
// offset: bold, italic, code, strikethrough.
var inlinePattern = regexp.MustCompile("\\*\\*(.+?)\\*\\*|\\*(.+?)\\*|`(.+?)`|~~(.+?)~~")

// ParseInline splits one line into styled spans. Wrapped text is taken as
// is; styles never nest. A line without markers comes back as a single
// plain span.
func ParseInline(line string) RichText {
	matches := inlinePattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return RichText{{Content: line}}
	}

	rt := make(RichText, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			rt = append(rt, Span{Content: line[last:m[0]]})
		}
		switch {
		case m[2] >= 0:
			rt = append(rt, Span{Content: line[m[2]:m[3]], Bold: true})
		case m[4] >= 0:
			rt = append(rt, Span{Content: line[m[4]:m[5]], Italic: true})
		case m[6] >= 0:
			rt = append(rt, Span{Content: line[m[6]:m[7]], Code: true})
		case m[8] >= 0:
			rt = append(rt, Span{Content: line[m[8]:m[9]], Strikethrough: true})
		}
		last = m[1]
	}
	if last < len(line) {
		rt = append(rt, Span{Content: line[last:]})
	}
	return rt
}
