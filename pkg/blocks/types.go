package blocks

// Type is the block kind, spelled the way Notion tags it on the wire.
type Type string

const (
	TypeParagraph    Type = "paragraph"
	TypeHeading1     Type = "heading_1"
	TypeHeading2     Type = "heading_2"
	TypeHeading3     Type = "heading_3"
	TypeBulletItem   Type = "bulleted_list_item"
	TypeNumberedItem Type = "numbered_list_item"
	TypeToDo         Type = "to_do"
	TypeCallout      Type = "callout"
	TypeQuote        Type = "quote"
	TypeDivider      Type = "divider"
	TypeBookmark     Type = "bookmark"
	TypeCode         Type = "code"
	TypeTable        Type = "table"
	TypeToggle       Type = "toggle"
)

// Span is a run of text carrying its own style flags
type Span struct {
	Content       string
	Bold          bool
	Italic        bool
	Code          bool
	Strikethrough bool
}

// Plain reports whether the span carries no style.
func (s Span) Plain() bool {
	return !s.Bold && !s.Italic && !s.Code && !s.Strikethrough
}

// RichText is an ordered sequence of spans; order is rendering order.
type RichText []Span

// Text returns the unstyled content of every span concatenated.
func (rt RichText) Text() string {
	var n int
	for _, s := range rt {
		n += len(s.Content)
	}
	buf := make([]byte, 0, n)
	for _, s := range rt {
		buf = append(buf, s.Content...)
	}
	return string(buf)
}

// Table holds the rows of a table block. Every row has exactly Width cells.
type Table struct {
	Width           int
	HasColumnHeader bool
	HasRowHeader    bool
	Rows            [][]RichText
}

// Block represents one node of a block tree. Which fields are meaningful
// depends on Type:
//
//   - Text: paragraph, headings, list items, to_do, callout, quote, toggle title
//   - Level: headings (1..3)
//   - Checked: to_do
//   - Icon: callout
//   - URL, Caption: bookmark
//   - Language, Code: code
//   - Table: table
//   - Children: toggle (and any store block that has children)
type Block struct {
	Type     Type
	Text     RichText
	Level    int
	Checked  bool
	Icon     string
	URL      string
	Caption  RichText
	Language string
	Code     string
	Table    *Table
	Children []*Block
}

// Heading returns a heading block of the given level, clamped to 1..3.
func Heading(level int, text RichText) *Block {
	switch {
	case level <= 1:
		return &Block{Type: TypeHeading1, Level: 1, Text: text}
	case level == 2:
		return &Block{Type: TypeHeading2, Level: 2, Text: text}
	default:
		return &Block{Type: TypeHeading3, Level: 3, Text: text}
	}
}

// Paragraph returns a paragraph block.
func Paragraph(text RichText) *Block {
	return &Block{Type: TypeParagraph, Text: text}
}

// emptyParagraph is the placeholder child of a toggle with no parsed content.
func emptyParagraph() *Block {
	return Paragraph(RichText{{Content: ""}})
}

// IsHeading reports whether b is one of the three heading kinds.
func (b *Block) IsHeading() bool {
	return b.Type == TypeHeading1 || b.Type == TypeHeading2 || b.Type == TypeHeading3
}

// Count returns the number of blocks in the tree, children included.
func Count(tree []*Block) int {
	n := 0
	for _, b := range tree {
		n++
		n += Count(b.Children)
	}
	return n
}

// Walk visits every block depth-first, parents before children.
func Walk(tree []*Block, fn func(b *Block, depth int)) {
	walk(tree, 0, fn)
}

func walk(tree []*Block, depth int, fn func(*Block, int)) {
	for _, b := range tree {
		fn(b, depth)
		walk(b.Children, depth+1, fn)
	}
}
