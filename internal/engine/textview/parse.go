package textview

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// BlockKind is the role of a block of page text
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	BlockQuote
	BlockPre
	BlockRule
)

// Inline is a run of text, a link when Href is set
type Inline struct {
	Text string
	Href string
}

// Block is one displayable unit of a page
type Block struct {
	Kind    BlockKind
	Level   int // heading level 1-6
	Inlines []Inline
}

// Text returns the block's plain text
func (b Block) Text() string {
	var sb strings.Builder
	for _, in := range b.Inlines {
		sb.WriteString(in.Text)
	}
	return sb.String()
}

// Page is the reader representation of a document
type Page struct {
	Title  string
	Blocks []Block
}

// links returns every link target on the page in order
func (p *Page) links() []string {
	var links []string
	for _, b := range p.Blocks {
		for _, in := range b.Inlines {
			if in.Href != "" {
				links = append(links, in.Href)
			}
		}
	}
	return links
}

var removedElements = "head, script, style, noscript, template, iframe, object, embed, svg, canvas, form, nav, footer"

var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "main": true,
	"header": true, "aside": true, "figure": true, "figcaption": true,
	"table": true, "tr": true, "td": true, "th": true, "dl": true, "dt": true,
	"dd": true, "ul": true, "ol": true, "address": true, "details": true,
	"summary": true, "caption": true,
}

// newPolicy returns the sanitizer applied to page bodies
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div", "span", "main", "header", "aside", "section", "article", "figure", "figcaption", "address", "summary", "details")
	p.AllowURLSchemes("http", "https", "file")
	return p
}

// ParseHTML reads an HTML document into a Page. The title comes from
// <title>, falling back to the base URL's host. Links are resolved
// against base; links that do not lead to a loadable page are kept as
// plain text.
func ParseHTML(r io.Reader, base *url.URL, policy *bluemonday.Policy) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := collapseSpace(doc.Find("title").First().Text())
	if title == "" {
		title = fallbackTitle(base)
	}

	doc.Find(removedElements).Remove()
	body, err := doc.Find("body").First().Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render body: %w", err)
	}

	if policy == nil {
		policy = newPolicy()
	}
	clean, err := goquery.NewDocumentFromReader(strings.NewReader(policy.Sanitize(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sanitized HTML: %w", err)
	}

	x := &extractor{base: base}
	x.walk(clean.Find("body").First())
	x.flush()

	return &Page{Title: title, Blocks: x.blocks}, nil
}

// ParseText wraps plain text into a single preformatted block
func ParseText(text string, base *url.URL) *Page {
	page := &Page{Title: fallbackTitle(base)}
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) != "" {
		page.Blocks = []Block{{Kind: BlockPre, Inlines: []Inline{{Text: text}}}}
	}
	return page
}

// ErrorPage describes a failed load of target
func ErrorPage(target string, cause error) *Page {
	return &Page{
		Title: "Page not available",
		Blocks: []Block{
			{Kind: BlockHeading, Level: 1, Inlines: []Inline{{Text: "This page could not be loaded"}}},
			{Kind: BlockParagraph, Inlines: []Inline{{Text: target}}},
			{Kind: BlockQuote, Inlines: []Inline{{Text: cause.Error()}}},
		},
	}
}

// extractor turns a sanitized body into blocks. Text accumulates in cur
// until a block boundary flushes it as kind.
type extractor struct {
	base   *url.URL
	blocks []Block
	cur    []Inline
	kind   BlockKind
	level  int
}

func (x *extractor) walk(s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		node := c.Get(0)
		switch node.Type {
		case html.TextNode:
			x.addText(node.Data)
		case html.ElementNode:
			x.element(goquery.NodeName(c), c)
		}
	})
}

func (x *extractor) element(tag string, c *goquery.Selection) {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		x.within(BlockHeading, int(tag[1]-'0'), c)
	case "li":
		x.within(BlockListItem, 0, c)
	case "blockquote":
		x.within(BlockQuote, 0, c)
	case "pre":
		x.flush()
		if text := strings.Trim(c.Text(), "\n"); strings.TrimSpace(text) != "" {
			x.blocks = append(x.blocks, Block{Kind: BlockPre, Inlines: []Inline{{Text: text}}})
		}
	case "hr":
		x.flush()
		x.blocks = append(x.blocks, Block{Kind: BlockRule})
	case "br":
		x.flush()
	case "a":
		x.link(c)
	case "img":
		if alt := collapseSpace(c.AttrOr("alt", "")); alt != "" {
			x.addText(" [" + alt + "] ")
		}
	default:
		if blockElements[tag] {
			x.flush()
			x.walk(c)
			x.flush()
			return
		}
		x.walk(c)
	}
}

// within flushes pending text, walks c as a block of kind and restores the
// surrounding kind afterwards.
func (x *extractor) within(kind BlockKind, level int, c *goquery.Selection) {
	x.flush()
	prevKind, prevLevel := x.kind, x.level
	x.kind, x.level = kind, level
	x.walk(c)
	x.flush()
	x.kind, x.level = prevKind, prevLevel
}

func (x *extractor) link(c *goquery.Selection) {
	text := collapseSpace(c.Text())
	if text == "" {
		text = collapseSpace(c.Find("img").AttrOr("alt", ""))
	}
	if text == "" {
		return
	}

	href := resolveLink(x.base, c.AttrOr("href", ""))
	if href == "" {
		x.addText(text)
		return
	}
	x.cur = append(x.cur, Inline{Text: text, Href: href})
}

func (x *extractor) addText(s string) {
	s = squeeze(s)
	n := len(x.cur)
	if n > 0 && strings.HasPrefix(s, " ") && strings.HasSuffix(x.cur[n-1].Text, " ") {
		s = s[1:]
	}
	if s == "" {
		return
	}
	if n > 0 && x.cur[n-1].Href == "" {
		x.cur[n-1].Text += s
		return
	}
	x.cur = append(x.cur, Inline{Text: s})
}

func (x *extractor) flush() {
	inlines := x.cur
	x.cur = nil
	if len(inlines) == 0 {
		return
	}

	inlines[0].Text = strings.TrimLeft(inlines[0].Text, " ")
	last := len(inlines) - 1
	inlines[last].Text = strings.TrimRight(inlines[last].Text, " ")

	kept := inlines[:0]
	for _, in := range inlines {
		if in.Text != "" {
			kept = append(kept, in)
		}
	}
	if len(kept) == 0 {
		return
	}
	x.blocks = append(x.blocks, Block{Kind: x.kind, Level: x.level, Inlines: kept})
}

// resolveLink returns the absolute form of href, or "" for fragments and
// schemes the engine cannot load. file links are only followed from pages
// that were themselves read from disk.
func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	var (
		u   *url.URL
		err error
	)
	if base != nil {
		u, err = base.Parse(href)
	} else {
		u, err = url.Parse(href)
	}
	if err != nil {
		return ""
	}

	switch u.Scheme {
	case "http", "https":
		return u.String()
	case "file":
		if base != nil && base.Scheme == "file" {
			return u.String()
		}
		return ""
	default:
		return ""
	}
}

// fallbackTitle names a page that has no <title>
func fallbackTitle(base *url.URL) string {
	if base == nil {
		return ""
	}
	if base.Host != "" {
		return base.Host
	}
	if base.Scheme == "file" && base.Path != "" {
		return path.Base(base.Path)
	}
	return base.String()
}

// squeeze replaces every run of whitespace with one space, keeping a
// single leading or trailing space when present.
func squeeze(s string) string {
	if s == "" {
		return ""
	}
	lead := isSpace(s[0])
	trail := isSpace(s[len(s)-1])
	core := strings.Join(strings.Fields(s), " ")
	if core == "" {
		return " "
	}
	if lead {
		core = " " + core
	}
	if trail {
		core += " "
	}
	return core
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
