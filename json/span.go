package json

import (
	"fmt"

	"github.com/fwojciec/chatmd"
)

// spanDTO is the JSON representation of a Span with a type discriminator.
type spanDTO struct {
	Type     string    `json:"type"`
	Text     *string   `json:"text,omitempty"`
	Children []spanDTO `json:"children,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Alt      *string   `json:"alt,omitempty"`
}

func marshalSpans(spans []chatmd.Span) []spanDTO {
	if len(spans) == 0 {
		return nil
	}
	out := make([]spanDTO, len(spans))
	for i, s := range spans {
		out[i] = marshalSpan(s)
	}
	return out
}

func marshalSpan(s chatmd.Span) spanDTO {
	switch v := s.(type) {
	case chatmd.Text:
		return spanDTO{Type: "text", Text: &v.Text}
	case chatmd.Bold:
		return spanDTO{Type: "bold", Children: marshalSpans(v.Children)}
	case chatmd.Italic:
		return spanDTO{Type: "italic", Children: marshalSpans(v.Children)}
	case chatmd.BoldItalic:
		return spanDTO{Type: "bold_italic", Children: marshalSpans(v.Children)}
	case chatmd.CodeSpan:
		return spanDTO{Type: "code", Text: &v.Code}
	case chatmd.Strikethrough:
		return spanDTO{Type: "strikethrough", Children: marshalSpans(v.Children)}
	case chatmd.Link:
		return spanDTO{Type: "link", Children: marshalSpans(v.Children), URL: &v.URL}
	case chatmd.Image:
		return spanDTO{Type: "image", Alt: &v.Alt, URL: &v.URL}
	}
	// Span is sealed; every variant is handled above.
	panic(fmt.Sprintf("unknown span type %T", s))
}

func unmarshalSpans(dtos []spanDTO) ([]chatmd.Span, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	out := make([]chatmd.Span, len(dtos))
	for i, dto := range dtos {
		s, err := unmarshalSpan(dto)
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

func unmarshalSpan(dto spanDTO) (chatmd.Span, error) {
	children, err := unmarshalSpans(dto.Children)
	if err != nil {
		return nil, err
	}
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	switch dto.Type {
	case "text":
		return chatmd.Text{Text: str(dto.Text)}, nil
	case "bold":
		return chatmd.Bold{Children: children}, nil
	case "italic":
		return chatmd.Italic{Children: children}, nil
	case "bold_italic":
		return chatmd.BoldItalic{Children: children}, nil
	case "code":
		return chatmd.CodeSpan{Code: str(dto.Text)}, nil
	case "strikethrough":
		return chatmd.Strikethrough{Children: children}, nil
	case "link":
		return chatmd.Link{Children: children, URL: str(dto.URL)}, nil
	case "image":
		return chatmd.Image{Alt: str(dto.Alt), URL: str(dto.URL)}, nil
	default:
		return nil, fmt.Errorf("unknown span type %q: %w", dto.Type, chatmd.ErrValidation)
	}
}
