// Package nav turns address-bar input into a URL to load.
package nav

import (
	"net/url"
	"strings"
)

// DefaultSearchTemplate is used when a Resolver has no template
const DefaultSearchTemplate = "https://www.google.com/search?q=%s"

const queryPlaceholder = "%s"

// Resolver maps free text to a URL. Text starting with "http" is taken as
// is, text with a dot is treated as a host, anything else is searched.
type Resolver struct {
	searchTemplate string
}

// NewResolver creates a resolver using the given search template. The
// template must contain one %s; otherwise the default is used.
func NewResolver(searchTemplate string) *Resolver {
	if !strings.Contains(searchTemplate, queryPlaceholder) {
		searchTemplate = DefaultSearchTemplate
	}
	return &Resolver{searchTemplate: searchTemplate}
}

// SearchTemplate returns the active template
func (r *Resolver) SearchTemplate() string {
	return r.searchTemplate
}

// Resolve returns the URL for the given input. Input beginning with
// "http" is returned unchanged; other input is trimmed before it is
// classified. Callers should skip blank input; Resolve of blank text
// yields an empty search.
func (r *Resolver) Resolve(text string) string {
	if strings.HasPrefix(text, "http") {
		return text
	}
	text = strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(text, "http"):
		return text
	case strings.Contains(text, "."):
		return "https://" + text
	default:
		return strings.Replace(r.searchTemplate, queryPlaceholder, url.QueryEscape(text), 1)
	}
}

// IsBlank reports whether the input should be ignored
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
