package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/pfrederiksen/dtu-calendar/internal/config"
	"github.com/pfrederiksen/dtu-calendar/internal/logger"
)

const (
	DefaultTimeout   = 20 * time.Second
	DefaultUserAgent = "dtu-calendar/1.0 (github.com/pfrederiksen/dtu-calendar)"
)

// User-facing fetch failure messages.
const (
	MsgTimeout     = "Request timeout. Please try again later."
	MsgUnavailable = "Unable to fetch data. Please try again later."
	MsgUnexpected  = "An unexpected error occurred. Please try again later."
)

// ErrorKind classifies a fetch failure.
type ErrorKind string

const (
	KindTimeout     ErrorKind = "TIMEOUT"
	KindServerError ErrorKind = "SERVER_ERROR"
)

// FetchError is returned by Fetch for every failure.
type FetchError struct {
	Kind    ErrorKind
	Message string
	URL     string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is a fetch timeout.
func IsTimeout(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindTimeout
}

// DocumentFetcher retrieves and parses a page.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Fetcher issues one GET per call with a fixed timeout and no retries.
type Fetcher struct {
	client  *resty.Client
	timeout time.Duration
	log     *zap.Logger
	metrics *logger.Metrics
}

// NewFetcher creates a Fetcher. log and metrics may be nil.
func NewFetcher(cfg *config.UpstreamConfig, log *zap.Logger, metrics *logger.Metrics) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = logger.NewMetrics()
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &Fetcher{
		client:  client,
		timeout: timeout,
		log:     log,
		metrics: metrics,
	}
}

// Fetch GETs url and parses the body. Success needs status 200 and a
// non-empty body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	resp, err := f.client.R().SetContext(ctx).Get(url)
	elapsed := time.Since(start)
	f.metrics.RecordTiming("upstream.fetch", elapsed)

	if err != nil {
		if isTimeout(ctx, err) {
			f.metrics.IncrCounter("upstream.fetch.timeout")
			f.log.Warn("upstream request timed out", zap.String("url", url), zap.Duration("elapsed", elapsed))
			return nil, &FetchError{Kind: KindTimeout, Message: MsgTimeout, URL: url, Err: err}
		}
		f.metrics.IncrCounter("upstream.fetch.error")
		f.log.Warn("upstream request failed", zap.String("url", url), zap.Error(err))
		return nil, &FetchError{Kind: KindServerError, Message: MsgUnexpected, URL: url, Err: err}
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK || len(body) == 0 {
		f.metrics.IncrCounter("upstream.fetch.error")
		f.log.Warn("upstream returned no usable page",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode()),
			zap.Int("bytes", len(body)),
		)
		return nil, &FetchError{
			Kind:    KindServerError,
			Message: MsgUnavailable,
			URL:     url,
			Err:     &StatusError{StatusCode: resp.StatusCode(), Empty: len(body) == 0},
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		f.metrics.IncrCounter("upstream.fetch.error")
		return nil, &FetchError{Kind: KindServerError, Message: MsgUnexpected, URL: url, Err: err}
	}

	f.metrics.IncrCounter("upstream.fetch.ok")
	f.log.Debug("upstream page fetched",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", elapsed),
	)

	return doc, nil
}

// StatusError describes a response that was not a usable page.
type StatusError struct {
	StatusCode int
	Empty      bool
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusOK && e.Empty {
		return "empty response body"
	}
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
