package json

import (
	"fmt"

	"github.com/fwojciec/chatmd"
)

// blockDTO is the JSON representation of a Block with a type discriminator.
type blockDTO struct {
	Type     string         `json:"type"`
	Level    *int           `json:"level,omitempty"`
	Ordinal  *string        `json:"ordinal,omitempty"`
	Checked  *bool          `json:"checked,omitempty"`
	Language *string        `json:"language,omitempty"`
	Lines    []string       `json:"lines,omitempty"`
	Code     *string        `json:"code,omitempty"`
	Spans    []spanDTO      `json:"spans,omitempty"`
	Header   *[][]spanDTO   `json:"header,omitempty"`
	Rows     *[][][]spanDTO `json:"rows,omitempty"`
}

func marshalBlock(b chatmd.Block) (blockDTO, error) {
	switch v := b.(type) {
	case chatmd.Heading:
		return blockDTO{Type: "heading", Level: &v.Level, Spans: marshalSpans(v.Spans)}, nil
	case chatmd.Paragraph:
		return blockDTO{Type: "paragraph", Spans: marshalSpans(v.Spans)}, nil
	case chatmd.Blockquote:
		return blockDTO{Type: "blockquote", Spans: marshalSpans(v.Spans)}, nil
	case chatmd.HorizontalRule:
		return blockDTO{Type: "horizontal_rule"}, nil
	case chatmd.BulletItem:
		return blockDTO{Type: "bullet_item", Spans: marshalSpans(v.Spans)}, nil
	case chatmd.OrderedItem:
		return blockDTO{Type: "ordered_item", Ordinal: &v.Ordinal, Spans: marshalSpans(v.Spans)}, nil
	case chatmd.TaskItem:
		return blockDTO{Type: "task_item", Checked: &v.Checked, Spans: marshalSpans(v.Spans)}, nil
	case chatmd.CodeBlock:
		return blockDTO{Type: "code_block", Language: &v.Language, Lines: v.Lines}, nil
	case chatmd.InlineCode:
		return blockDTO{Type: "inline_code", Code: &v.Code}, nil
	case chatmd.Table:
		dto := blockDTO{Type: "table"}
		if v.Header != nil {
			header := marshalCells(v.Header)
			dto.Header = &header
		}
		if v.Rows != nil {
			rows := make([][][]spanDTO, len(v.Rows))
			for i, row := range v.Rows {
				rows[i] = marshalCells(row)
			}
			dto.Rows = &rows
		}
		return dto, nil
	case chatmd.Spacer:
		return blockDTO{Type: "spacer"}, nil
	default:
		return blockDTO{}, fmt.Errorf("unknown block type %T: %w", b, chatmd.ErrValidation)
	}
}

func marshalCells(cells [][]chatmd.Span) [][]spanDTO {
	if cells == nil {
		return nil
	}
	out := make([][]spanDTO, len(cells))
	for i, c := range cells {
		out[i] = marshalSpans(c)
	}
	return out
}

func unmarshalBlock(dto blockDTO) (chatmd.Block, error) {
	spans, err := unmarshalSpans(dto.Spans)
	if err != nil {
		return nil, err
	}
	switch dto.Type {
	case "heading":
		if dto.Level == nil || *dto.Level < 1 || *dto.Level > 4 {
			return nil, fmt.Errorf("heading level must be in [1, 4]: %w", chatmd.ErrValidation)
		}
		return chatmd.Heading{Level: *dto.Level, Spans: spans}, nil
	case "paragraph":
		return chatmd.Paragraph{Spans: spans}, nil
	case "blockquote":
		return chatmd.Blockquote{Spans: spans}, nil
	case "horizontal_rule":
		return chatmd.HorizontalRule{}, nil
	case "bullet_item":
		return chatmd.BulletItem{Spans: spans}, nil
	case "ordered_item":
		var ordinal string
		if dto.Ordinal != nil {
			ordinal = *dto.Ordinal
		}
		return chatmd.OrderedItem{Ordinal: ordinal, Spans: spans}, nil
	case "task_item":
		var checked bool
		if dto.Checked != nil {
			checked = *dto.Checked
		}
		return chatmd.TaskItem{Checked: checked, Spans: spans}, nil
	case "code_block":
		var lang string
		if dto.Language != nil {
			lang = *dto.Language
		}
		lines := dto.Lines
		if lines == nil {
			lines = []string{}
		}
		return chatmd.CodeBlock{Language: lang, Lines: lines}, nil
	case "inline_code":
		var code string
		if dto.Code != nil {
			code = *dto.Code
		}
		return chatmd.InlineCode{Code: code}, nil
	case "table":
		var t chatmd.Table
		if dto.Header != nil {
			header, err := unmarshalCells(*dto.Header)
			if err != nil {
				return nil, fmt.Errorf("header: %w", err)
			}
			t.Header = header
		}
		if dto.Rows != nil {
			t.Rows = make([][][]chatmd.Span, len(*dto.Rows))
			for i, row := range *dto.Rows {
				cells, err := unmarshalCells(row)
				if err != nil {
					return nil, fmt.Errorf("row %d: %w", i, err)
				}
				t.Rows[i] = cells
			}
		}
		return t, nil
	case "spacer":
		return chatmd.Spacer{}, nil
	default:
		return nil, fmt.Errorf("unknown block type %q: %w", dto.Type, chatmd.ErrValidation)
	}
}

func unmarshalCells(dtos [][]spanDTO) ([][]chatmd.Span, error) {
	if dtos == nil {
		return nil, nil
	}
	out := make([][]chatmd.Span, len(dtos))
	for i, d := range dtos {
		spans, err := unmarshalSpans(d)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		out[i] = spans
	}
	return out, nil
}
