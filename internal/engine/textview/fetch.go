package textview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

var (
	// ErrPageTooLarge is returned when a page exceeds the configured size
	ErrPageTooLarge = errors.New("page too large")

	// ErrUnsupportedScheme is returned for URLs the engine cannot load
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
)

// sniffLen is how much of a body is inspected to detect its type
const sniffLen = 3072

// source is an opened response body with its metadata
type source struct {
	finalURL    *url.URL
	contentType string
	disposition string
	status      int
	body        io.ReadCloser
}

// result is the outcome of one load. Exactly one of page or download is set.
type result struct {
	finalURL string
	page     *Page
	download *download
	err      error
}

// load fetches target and decides whether it is a page or a download.
// Failures become an error page.
func (e *Engine) load(ctx context.Context, client *resty.Client, target string) result {
	u, err := url.Parse(target)
	if err != nil {
		return e.failed(target, fmt.Errorf("invalid URL: %w", err))
	}

	var src *source
	switch u.Scheme {
	case "http", "https":
		src, err = e.openHTTP(ctx, client, target)
	case "file":
		src, err = openFile(u)
	case "about":
		return result{finalURL: target, page: &Page{Title: target}}
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if err != nil {
		return e.failed(target, err)
	}

	res, err := e.classify(src)
	if err != nil {
		return e.failed(src.finalURL.String(), err)
	}
	return res
}

func (e *Engine) failed(target string, err error) result {
	e.log.Debug("load failed", zap.String("url", target), zap.Error(err))
	return result{finalURL: target, page: ErrorPage(target, err), err: err}
}

func (e *Engine) openHTTP(ctx context.Context, client *resty.Client, target string) (*source, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	raw := resp.RawResponse
	final := raw.Request.URL
	e.log.Debug("response",
		zap.String("url", final.String()),
		zap.Int("status", raw.StatusCode),
		zap.String("content_type", raw.Header.Get("Content-Type")))

	return &source{
		finalURL:    final,
		contentType: raw.Header.Get("Content-Type"),
		disposition: raw.Header.Get("Content-Disposition"),
		status:      raw.StatusCode,
		body:        resp.RawBody(),
	}, nil
}

func openFile(u *url.URL) (*source, error) {
	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	p = filepath.FromSlash(p)

	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", p)
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	return &source{
		finalURL:    u,
		contentType: mime.TypeByExtension(filepath.Ext(p)),
		body:        f,
	}, nil
}

// classify sniffs the body and either reads it as a page or wraps it as a
// download. The body is closed unless a download takes ownership.
func (e *Engine) classify(src *source) (result, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src.body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		src.body.Close()
		return result{}, fmt.Errorf("read body: %w", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	mediaType := effectiveType(src.contentType, detected)
	final := src.finalURL.String()
	rest := io.MultiReader(bytes.NewReader(head), src.body)

	if isAttachment(src.disposition) || !isRenderable(mediaType) {
		return result{
			finalURL: final,
			download: newDownload(e, final, suggestedName(src, detected), mediaType, rest, src.body),
		}, nil
	}
	defer src.body.Close()

	data, err := io.ReadAll(io.LimitReader(rest, e.opts.MaxPageBytes+1))
	if err != nil {
		return result{}, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > e.opts.MaxPageBytes {
		return result{}, fmt.Errorf("%w: more than %d bytes", ErrPageTooLarge, e.opts.MaxPageBytes)
	}

	contentType := src.contentType
	if contentType == "" {
		contentType = detected.String()
	}

	if isHTML(mediaType) {
		r, err := charset.NewReader(bytes.NewReader(data), contentType)
		if err != nil {
			return result{}, fmt.Errorf("decode body: %w", err)
		}
		page, err := ParseHTML(r, src.finalURL, e.policy)
		if err != nil {
			return result{}, err
		}
		return result{finalURL: final, page: page}, nil
	}

	r, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return result{}, fmt.Errorf("decode body: %w", err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return result{}, fmt.Errorf("decode body: %w", err)
	}
	return result{finalURL: final, page: ParseText(string(text), src.finalURL)}, nil
}

// effectiveType prefers the declared media type and falls back to the
// sniffed one when nothing useful was declared.
func effectiveType(declared string, detected *mimetype.MIME) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return detected.String()
	}
	return mt
}

func isHTML(mediaType string) bool {
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

func isRenderable(mediaType string) bool {
	if isHTML(mediaType) || strings.HasPrefix(mediaType, "text/") {
		return true
	}
	switch mediaType {
	case "application/json", "application/xml", "application/javascript":
		return true
	}
	return false
}

func isAttachment(disposition string) bool {
	if disposition == "" {
		return false
	}
	d, _, err := mime.ParseMediaType(disposition)
	if err != nil {
		return strings.HasPrefix(strings.ToLower(strings.TrimSpace(disposition)), "attachment")
	}
	return d == "attachment"
}

// suggestedName picks a file name from Content-Disposition, the URL path,
// or "download" with the detected extension.
func suggestedName(src *source, detected *mimetype.MIME) string {
	if src.disposition != "" {
		if _, params, err := mime.ParseMediaType(src.disposition); err == nil {
			if name := params["filename"]; name != "" {
				return path.Base(strings.ReplaceAll(name, "\\", "/"))
			}
		}
	}
	if base := path.Base(src.finalURL.Path); base != "" && base != "/" && base != "." {
		return base
	}
	return "download" + detected.Extension()
}
