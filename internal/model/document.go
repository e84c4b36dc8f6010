package model

// Bookmark is a saved page. Bookmarks are appended in the order they were
// added and are never deduplicated.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Document is everything the browser persists between runs.
type Document struct {
	Bookmarks []Bookmark `json:"bookmarks"`
	History   []string   `json:"history"`
}

// NewDocument returns an empty document. Both lists are non-nil so the
// document always encodes them as JSON arrays.
func NewDocument() Document {
	return Document{
		Bookmarks: []Bookmark{},
		History:   []string{},
	}
}

// Normalize replaces nil lists with empty ones.
func (d *Document) Normalize() {
	if d.Bookmarks == nil {
		d.Bookmarks = []Bookmark{}
	}
	if d.History == nil {
		d.History = []string{}
	}
}

// AddBookmark appends a bookmark
func (d *Document) AddBookmark(title, url string) Bookmark {
	b := Bookmark{Title: title, URL: url}
	d.Bookmarks = append(d.Bookmarks, b)
	return b
}

// AddHistory appends a visited URL
func (d *Document) AddHistory(url string) {
	d.History = append(d.History, url)
}
