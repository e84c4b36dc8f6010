package textview

import (
	"net/url"

	"fyne.io/fyne/v2/widget"
)

// segments converts a page into RichText segments. onLink is called with
// the absolute target when a link is tapped.
func segments(p *Page, onLink func(string)) []widget.RichTextSegment {
	var (
		out  []widget.RichTextSegment
		list *widget.ListSegment
	)

	for _, b := range p.Blocks {
		if b.Kind != BlockListItem {
			list = nil
		}

		switch b.Kind {
		case BlockHeading:
			out = append(out, &widget.TextSegment{Style: headingStyle(b.Level), Text: b.Text()})
		case BlockListItem:
			if list == nil {
				list = &widget.ListSegment{}
				out = append(out, list)
			}
			list.Items = append(list.Items, &widget.ParagraphSegment{Texts: inlineSegments(b.Inlines, onLink)})
		case BlockQuote:
			out = append(out, &widget.TextSegment{Style: widget.RichTextStyleBlockquote, Text: b.Text()})
		case BlockPre:
			out = append(out, &widget.TextSegment{Style: widget.RichTextStyleCodeBlock, Text: b.Text()})
		case BlockRule:
			out = append(out, &widget.SeparatorSegment{})
		default:
			out = append(out, &widget.ParagraphSegment{Texts: inlineSegments(b.Inlines, onLink)})
		}
	}
	return out
}

func headingStyle(level int) widget.RichTextStyle {
	switch level {
	case 1:
		return widget.RichTextStyleHeading
	case 2:
		return widget.RichTextStyleSubHeading
	default:
		style := widget.RichTextStyleStrong
		style.Inline = false
		return style
	}
}

func inlineSegments(inlines []Inline, onLink func(string)) []widget.RichTextSegment {
	segs := make([]widget.RichTextSegment, 0, len(inlines))
	for _, in := range inlines {
		if in.Href == "" {
			segs = append(segs, &widget.TextSegment{Style: widget.RichTextStyleInline, Text: in.Text})
			continue
		}

		u, err := url.Parse(in.Href)
		if err != nil {
			segs = append(segs, &widget.TextSegment{Style: widget.RichTextStyleInline, Text: in.Text})
			continue
		}
		href := in.Href
		segs = append(segs, &widget.HyperlinkSegment{
			Text: in.Text,
			URL:  u,
			OnTapped: func() {
				if onLink != nil {
					onLink(href)
				}
			},
		})
	}
	return segs
}
