package blocks

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// MaxTextLength is the longest content Notion accepts in one rich text item.
const MaxTextLength = 2000

// typeTableRow only appears while reading tables back from the store.
const typeTableRow Type = "table_row"

type wireText struct {
	Content string `json:"content"`
}

type wireAnnotations struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Code          bool `json:"code,omitempty"`
}

type wireRichText struct {
	Type        string           `json:"type"`
	Text        wireText         `json:"text"`
	Annotations *wireAnnotations `json:"annotations,omitempty"`
}

type wireIcon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// wirePayload is the type-specific object of a block. Only the fields that
// belong to the block's type are set.
type wirePayload struct {
	RichText        *RichText   `json:"rich_text,omitempty"`
	Checked         *bool       `json:"checked,omitempty"`
	Icon            *wireIcon   `json:"icon,omitempty"`
	URL             string      `json:"url,omitempty"`
	Caption         *RichText   `json:"caption,omitempty"`
	Language        string      `json:"language,omitempty"`
	TableWidth      int         `json:"table_width,omitempty"`
	HasColumnHeader *bool       `json:"has_column_header,omitempty"`
	HasRowHeader    *bool       `json:"has_row_header,omitempty"`
	Cells           *[]RichText `json:"cells,omitempty"`
	Children        []*Block    `json:"children,omitempty"`
}

// MarshalJSON encodes rich text as Notion text objects. Plain spans carry no
// annotations and content over MaxTextLength is split across items.
func (rt RichText) MarshalJSON() ([]byte, error) {
	items := make([]wireRichText, 0, len(rt))
	for _, s := range rt {
		var ann *wireAnnotations
		if !s.Plain() {
			ann = &wireAnnotations{
				Bold:          s.Bold,
				Italic:        s.Italic,
				Strikethrough: s.Strikethrough,
				Code:          s.Code,
			}
		}
		for _, chunk := range splitText(s.Content, MaxTextLength) {
			items = append(items, wireRichText{Type: "text", Text: wireText{Content: chunk}, Annotations: ann})
		}
	}
	return json.Marshal(items)
}

// MarshalJSON encodes the block in the shape Notion accepts when creating
// pages and appending children.
func (b *Block) MarshalJSON() ([]byte, error) {
	var payload wirePayload
	text := b.Text
	if text == nil {
		text = RichText{}
	}

	switch b.Type {
	case TypeDivider:
	case TypeToDo:
		checked := b.Checked
		payload.RichText = &text
		payload.Checked = &checked
	case TypeCallout:
		icon := b.Icon
		if icon == "" {
			icon = DefaultCalloutIcon
		}
		payload.RichText = &text
		payload.Icon = &wireIcon{Type: "emoji", Emoji: icon}
	case TypeBookmark:
		caption := b.Caption
		if caption == nil {
			caption = RichText{}
		}
		payload.URL = b.URL
		payload.Caption = &caption
	case TypeCode:
		code := RichText{{Content: b.Code}}
		lang := b.Language
		if lang == "" {
			lang = FallbackLanguage
		}
		payload.RichText = &code
		payload.Language = lang
	case TypeTable:
		payload.TableWidth, payload.HasColumnHeader, payload.HasRowHeader, payload.Children = tablePayload(b.Table)
	case typeTableRow:
		var cells []RichText
		if b.Table != nil && len(b.Table.Rows) > 0 {
			cells = b.Table.Rows[0]
		}
		payload.Cells = &cells
	default:
		payload.RichText = &text
	}
	if b.Type != TypeTable && len(b.Children) > 0 {
		payload.Children = b.Children
	}

	return json.Marshal(map[string]interface{}{
		"object":       "block",
		"type":         b.Type,
		string(b.Type): payload,
	})
}

func tablePayload(t *Table) (int, *bool, *bool, []*Block) {
	if t == nil {
		t = &Table{}
	}
	colHeader, rowHeader := t.HasColumnHeader, t.HasRowHeader
	rows := make([]*Block, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, tableRow(row))
	}
	return t.Width, &colHeader, &rowHeader, rows
}

func tableRow(cells []RichText) *Block {
	return &Block{Type: typeTableRow, Table: &Table{Width: len(cells), Rows: [][]RichText{cells}}}
}

func splitText(s string, max int) []string {
	runes := []rune(s)
	if len(runes) <= max {
		return []string{s}
	}
	var out []string
	for len(runes) > max {
		out = append(out, string(runes[:max]))
		runes = runes[max:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}

// DecodeRichText reads a Notion rich text array. plain_text is preferred so
// mentions and equations keep their visible text.
func DecodeRichText(r gjson.Result) RichText {
	rt := RichText{}
	r.ForEach(func(_, item gjson.Result) bool {
		content := item.Get("plain_text")
		if !content.Exists() {
			content = item.Get("text.content")
		}
		ann := item.Get("annotations")
		rt = append(rt, Span{
			Content:       content.String(),
			Bold:          ann.Get("bold").Bool(),
			Italic:        ann.Get("italic").Bool(),
			Code:          ann.Get("code").Bool(),
			Strikethrough: ann.Get("strikethrough").Bool(),
		})
		return true
	})
	return rt
}

// DecodeBlock converts one block object returned by the store. Children are
// not fetched here; see AttachChildren. Block types the converter does not
// model keep their tag and render as nothing.
func DecodeBlock(r gjson.Result) *Block {
	t := Type(r.Get("type").String())
	p := r.Get(string(t))
	b := &Block{Type: t}

	switch t {
	case TypeHeading1, TypeHeading2, TypeHeading3:
		b.Level = headingLevel(t)
		b.Text = DecodeRichText(p.Get("rich_text"))
	case TypeToDo:
		b.Text = DecodeRichText(p.Get("rich_text"))
		b.Checked = p.Get("checked").Bool()
	case TypeCallout:
		b.Text = DecodeRichText(p.Get("rich_text"))
		b.Icon = p.Get("icon.emoji").String()
	case TypeBookmark:
		b.URL = p.Get("url").String()
		b.Caption = DecodeRichText(p.Get("caption"))
	case TypeCode:
		b.Code = DecodeRichText(p.Get("rich_text")).Text()
		b.Language = p.Get("language").String()
		if b.Language == "" {
			b.Language = FallbackLanguage
		}
	case TypeTable:
		b.Table = &Table{
			Width:           int(p.Get("table_width").Int()),
			HasColumnHeader: p.Get("has_column_header").Bool(),
			HasRowHeader:    p.Get("has_row_header").Bool(),
		}
	case typeTableRow:
		var cells []RichText
		p.Get("cells").ForEach(func(_, cell gjson.Result) bool {
			cells = append(cells, DecodeRichText(cell))
			return true
		})
		b.Table = &Table{Width: len(cells), Rows: [][]RichText{cells}}
	case TypeDivider:
	default:
		if rt := p.Get("rich_text"); rt.Exists() {
			b.Text = DecodeRichText(rt)
		}
	}
	return b
}

// AttachChildren sets the children fetched for b. Table rows are folded
// into the table itself.
func AttachChildren(b *Block, children []*Block) {
	if b.Type != TypeTable {
		b.Children = children
		return
	}
	if b.Table == nil {
		b.Table = &Table{}
	}
	for _, c := range children {
		if c.Type == typeTableRow && c.Table != nil && len(c.Table.Rows) > 0 {
			b.Table.Rows = append(b.Table.Rows, c.Table.Rows[0])
		}
	}
}
