// Package textview is a reader-mode browser engine. Pages are fetched over
// HTTP (or read from file:// URLs), sanitized, reduced to headings,
// paragraphs, lists and preformatted text, and shown in a Fyne RichText.
// Responses that are not pages are offered as downloads.
package textview

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"fyne.io/fyne/v2"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/microcosm-cc/bluemonday"
	"github.com/ytget/wayang/internal/engine"
	"github.com/ytget/wayang/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// Defaults applied to zero Options fields
const (
	DefaultUserAgent    = "Wayang/1.0 (+reader)"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxPageBytes = 10 << 20
	DefaultRetryMax     = 2
)

// Options configures an Engine
type Options struct {
	UserAgent    string
	Timeout      time.Duration // time allowed until the response is classified
	MaxPageBytes int64
	RetryMax     int // retries for failed idempotent requests; negative disables
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Flags        engine.Flags
	Logger       *logging.Logger

	// Dispatch runs fn on the UI thread. Defaults to fyne.Do.
	Dispatch func(fn func())
}

// Engine creates reader views. Normal views share one cookie jar; each
// private view gets its own.
type Engine struct {
	opts     Options
	log      *logging.Logger
	policy   *bluemonday.Policy
	shared   *resty.Client
	dispatch func(func())
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if ua := opts.Flags.Value(engine.FlagUserAgent); ua != "" {
		opts.UserAgent = ua
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxPageBytes <= 0 {
		opts.MaxPageBytes = DefaultMaxPageBytes
	}
	if opts.RetryMax == 0 {
		opts.RetryMax = DefaultRetryMax
	}
	if opts.RetryMax < 0 {
		opts.RetryMax = 0
	}
	if opts.RetryWaitMin <= 0 {
		opts.RetryWaitMin = 500 * time.Millisecond
	}
	if opts.RetryWaitMax <= 0 {
		opts.RetryWaitMax = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Dispatch == nil {
		opts.Dispatch = fyne.Do
	}

	e := &Engine{
		opts:     opts,
		log:      opts.Logger,
		policy:   newPolicy(),
		dispatch: opts.Dispatch,
	}
	e.shared = e.newClient(newJar())

	e.log.Info("reader engine ready",
		zap.String("user_agent", opts.UserAgent),
		zap.Duration("timeout", opts.Timeout),
		zap.Bool("gpu_disabled", opts.Flags.GPUDisabled()),
		zap.String("flags", opts.Flags.String()))
	for _, name := range opts.Flags.Names() {
		if name != engine.FlagUserAgent {
			e.log.Debug("engine flag has no effect on the reader", zap.String("flag", name))
		}
	}
	return e
}

// Factory returns an engine.Factory backed by this engine
func (e *Engine) Factory() engine.Factory {
	return func(mode engine.Mode) engine.View {
		return e.NewView(mode)
	}
}

// NewView creates a view for mode
func (e *Engine) NewView(mode engine.Mode) *View {
	client := e.shared
	if mode.Private {
		client = e.newClient(newJar())
	}
	return newView(e, client, mode)
}

// newClient builds a resty client whose transport retries through
// retryablehttp. Redirects are left to the outer client so the cookie jar
// sees every hop.
func (e *Engine) newClient(jar http.CookieJar) *resty.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = e.opts.RetryMax
	retryClient.RetryWaitMin = e.opts.RetryWaitMin
	retryClient.RetryWaitMax = e.opts.RetryWaitMax
	retryClient.Logger = retryLogger{e.log.Named("http").Sugar()}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	client := resty.New()
	client.
		SetTransport(&retryablehttp.RoundTripper{Client: retryClient}).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)).
		SetHeader("User-Agent", e.opts.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9,de;q=0.8")
	return client
}

func newJar() http.CookieJar {
	// cookiejar.New never returns an error
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

// retryLogger adapts zap to retryablehttp.LeveledLogger
type retryLogger struct {
	s *zap.SugaredLogger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }

var _ retryablehttp.LeveledLogger = retryLogger{}
