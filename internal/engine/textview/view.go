package textview

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/go-resty/resty/v2"
	"github.com/ytget/wayang/internal/engine"
	"github.com/ytget/wayang/internal/logging"
	"go.uber.org/zap"
)

type navKind int

const (
	navPush navKind = iota
	navBack
	navForward
	navReload
)

// View is a reader-mode engine.View
type View struct {
	engine *Engine
	client *resty.Client
	mode   engine.Mode
	log    *logging.Logger

	mu       sync.Mutex
	listener engine.Listener
	url      string
	title    string
	history  []string
	pos      int
	gen      uint64
	cancel   context.CancelFunc
	closed   bool
	page     *Page

	rich   *widget.RichText
	scroll *container.Scroll
}

func newView(e *Engine, client *resty.Client, mode engine.Mode) *View {
	rich := widget.NewRichText()
	rich.Wrapping = fyne.TextWrapWord

	return &View{
		engine: e,
		client: client,
		mode:   mode,
		log:    e.log.Named("view"),
		pos:    -1,
		rich:   rich,
		scroll: container.NewVScroll(rich),
	}
}

// Navigate implements engine.View
func (v *View) Navigate(url string) {
	v.start(url, navPush)
}

// Back implements engine.View
func (v *View) Back() {
	v.mu.Lock()
	if v.pos <= 0 {
		v.mu.Unlock()
		return
	}
	target := v.history[v.pos-1]
	v.mu.Unlock()
	v.start(target, navBack)
}

// Forward implements engine.View
func (v *View) Forward() {
	v.mu.Lock()
	if v.pos < 0 || v.pos >= len(v.history)-1 {
		v.mu.Unlock()
		return
	}
	target := v.history[v.pos+1]
	v.mu.Unlock()
	v.start(target, navForward)
}

// Reload implements engine.View
func (v *View) Reload() {
	v.mu.Lock()
	if v.pos < 0 {
		v.mu.Unlock()
		return
	}
	target := v.history[v.pos]
	v.mu.Unlock()
	v.start(target, navReload)
}

// CanGoBack reports whether Back has an entry to go to
func (v *View) CanGoBack() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pos > 0
}

// CanGoForward reports whether Forward has an entry to go to
func (v *View) CanGoForward() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pos >= 0 && v.pos < len(v.history)-1
}

// URL implements engine.View
func (v *View) URL() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.url
}

// Title implements engine.View
func (v *View) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// Page returns the page currently shown, nil before the first load
func (v *View) Page() *Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// Mode implements engine.View
func (v *View) Mode() engine.Mode {
	return v.mode
}

// SetListener implements engine.View
func (v *View) SetListener(l engine.Listener) {
	v.mu.Lock()
	v.listener = l
	v.mu.Unlock()
}

// CanvasObject implements engine.View
func (v *View) CanvasObject() fyne.CanvasObject {
	return v.scroll
}

// Close implements engine.View
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// start cancels any pending load and fetches target on a goroutine. Only
// the newest load may commit.
func (v *View) start(target string, kind navKind) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	client := v.client
	v.mu.Unlock()

	timer := time.AfterFunc(v.engine.opts.Timeout, cancel)

	go func() {
		res := v.engine.load(ctx, client, target)
		timer.Stop()

		v.mu.Lock()
		current := v.gen == gen && !v.closed
		if current && res.download != nil {
			// the body now belongs to the download
			v.cancel = nil
		}
		v.mu.Unlock()

		if res.download != nil {
			res.download.setCancel(cancel)
		} else {
			cancel()
		}

		if !current {
			if res.download != nil {
				res.download.Decline()
			}
			return
		}
		v.engine.dispatch(func() { v.commit(gen, kind, target, res) })
	}()
}

// commit applies a finished load on the UI thread
func (v *View) commit(gen uint64, kind navKind, target string, res result) {
	v.mu.Lock()
	if v.closed || gen != v.gen {
		v.mu.Unlock()
		if res.download != nil {
			res.download.Decline()
		}
		return
	}

	if res.download != nil {
		l := v.listener
		v.mu.Unlock()
		v.log.Info("download requested",
			zap.String("url", res.download.URL()),
			zap.String("mime", res.download.MimeType()))
		if l == nil {
			res.download.Decline()
			return
		}
		l.DownloadRequested(v, res.download)
		return
	}

	final := res.finalURL
	if final == "" {
		final = target
	}

	switch kind {
	case navPush:
		v.history = append(v.history[:v.pos+1], final)
		v.pos++
	case navBack:
		v.pos--
	case navForward:
		v.pos++
	}
	v.history[v.pos] = final
	v.cancel = nil

	urlChanged := final != v.url
	titleChanged := res.page.Title != v.title
	v.url = final
	v.title = res.page.Title
	v.page = res.page
	l := v.listener
	v.mu.Unlock()

	v.rich.Segments = segments(res.page, v.Navigate)
	v.rich.Refresh()
	v.scroll.ScrollToTop()

	if l == nil {
		return
	}
	if urlChanged {
		l.URLChanged(v, final)
	}
	if titleChanged {
		l.TitleChanged(v, res.page.Title)
	}
}

var _ engine.View = (*View)(nil)
