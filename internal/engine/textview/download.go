package textview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ytget/wayang/internal/engine"
	"go.uber.org/zap"
)

// ErrDownloadHandled is returned by Accept after the download was already
// accepted or declined
var ErrDownloadHandled = errors.New("download already handled")

// download holds a response body open until the user decides where it goes
type download struct {
	engine   *Engine
	url      string
	name     string
	mimeType string
	reader   io.Reader
	body     io.Closer

	once    sync.Once
	mu      sync.Mutex
	cancel  context.CancelFunc
	settled bool
}

func newDownload(e *Engine, url, name, mimeType string, reader io.Reader, body io.Closer) *download {
	return &download{
		engine:   e,
		url:      url,
		name:     name,
		mimeType: mimeType,
		reader:   reader,
		body:     body,
	}
}

// URL implements engine.Download
func (d *download) URL() string { return d.url }

// SuggestedName implements engine.Download
func (d *download) SuggestedName() string { return d.name }

// MimeType implements engine.Download
func (d *download) MimeType() string { return d.mimeType }

// Accept creates path and copies the body into it in the background. done
// runs on the UI thread once the copy ends. When the file cannot be
// created the download is released, the error returned and done is not
// called.
func (d *download) Accept(path string, done func(error)) error {
	err := ErrDownloadHandled
	d.once.Do(func() {
		f, ferr := os.Create(path)
		if ferr != nil {
			d.release()
			err = fmt.Errorf("create %s: %w", path, ferr)
			return
		}
		err = nil
		go d.copyTo(f, path, done)
	})
	return err
}

// Decline implements engine.Download
func (d *download) Decline() {
	d.once.Do(d.release)
}

func (d *download) copyTo(f *os.File, path string, done func(error)) {
	n, err := io.Copy(f, d.reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	d.release()

	log := d.engine.log.With(zap.String("url", d.url), zap.String("path", path))
	if err != nil {
		os.Remove(path)
		err = fmt.Errorf("download failed: %w", err)
		log.Warn("download failed", zap.Error(err))
	} else {
		log.Info("download finished", zap.Int64("bytes", n))
	}

	if done != nil {
		d.engine.dispatch(func() { done(err) })
	}
}

// setCancel hands the request's cancel func to the download. It runs on
// release.
func (d *download) setCancel(cancel context.CancelFunc) {
	d.mu.Lock()
	if d.settled {
		d.mu.Unlock()
		cancel()
		return
	}
	d.cancel = cancel
	d.mu.Unlock()
}

func (d *download) release() {
	d.body.Close()

	d.mu.Lock()
	d.settled = true
	cancel := d.cancel
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

var _ engine.Download = (*download)(nil)
