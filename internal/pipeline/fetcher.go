package pipeline

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/cartofolio/internal/logging"
	"github.com/ppiankov/cartofolio/internal/util"
	"github.com/ppiankov/cartofolio/internal/worker"
)

const defaultMaxAttempts = 3

var errBodyTooLarge = errors.New("body exceeds size limit")

// fetchSleepFunc waits between attempts and returns early when ctx ends;
// tests replace it
var fetchSleepFunc = sleepContext

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Fetcher retrieves mission documents over HTTP or from the local filesystem
type Fetcher struct {
	httpClient  *http.Client
	userAgent   string
	maxBytes    int64
	maxAttempts int
	limiter     *worker.Limiter
	logger      *zap.Logger
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64, insecureTLS bool, httpProxy, httpsProxy, noProxy string) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = util.NewProxyFunc(httpProxy, httpsProxy, noProxy)
	if insecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:   userAgent,
		maxBytes:    maxBytes,
		maxAttempts: defaultMaxAttempts,
		logger:      zap.NewNop(),
	}
}

// WithLimiter rate limits network fetches per host
func (f *Fetcher) WithLimiter(limiter *worker.Limiter) *Fetcher {
	f.limiter = limiter
	return f
}

// WithMaxAttempts bounds the number of attempts made by FetchWithRetry
func (f *Fetcher) WithMaxAttempts(n int) *Fetcher {
	if n > 0 {
		f.maxAttempts = n
	}
	return f
}

// WithLogger sets the logger used for retry diagnostics
func (f *Fetcher) WithLogger(logger *zap.Logger) *Fetcher {
	f.logger = logging.OrNop(logger)
	return f
}

// FetchResult contains the fetched document and metadata
type FetchResult struct {
	Body        []byte
	URL         string
	FinalURL    string
	ContentType string
	FetchedAt   time.Time
}

// IsLocalSource reports whether rawURL names a file rather than an http(s) resource
func IsLocalSource(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	return parsed.Scheme != "http" && parsed.Scheme != "https"
}

// Fetch retrieves a document once
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if IsLocalSource(rawURL) {
		return f.readLocal(rawURL)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, &TransportError{URL: rawURL, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: rawURL}
	}

	body, err := f.readLimited(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	return &FetchResult{
		Body:        body,
		URL:         rawURL,
		FinalURL:    resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// FetchWithRetry retries transient failures with exponential backoff.
// Client errors other than 429 fail on the first attempt. Retries are
// logged to the logger carried by ctx, if any.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (*FetchResult, error) {
	logger := logging.FromContext(ctx, f.logger)
	var lastErr error
	backoff := 500 * time.Millisecond

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		result, err := f.Fetch(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableFetchError(err) || attempt == f.maxAttempts {
			break
		}

		logger.Debug("retrying document fetch",
			zap.String("url", rawURL),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		if err := fetchSleepFunc(ctx, backoff); err != nil {
			return nil, &TransportError{URL: rawURL, Err: err}
		}
		backoff *= 2
	}

	return nil, lastErr
}

// isRetryableFetchError reports whether another attempt could succeed
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500 || statusErr.Code == http.StatusTooManyRequests
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		return false
	}

	var pathErr *fs.PathError
	switch {
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, errBodyTooLarge):
		return false
	case errors.As(err, &pathErr):
		return false
	}
	return true
}

func (f *Fetcher) readLocal(rawURL string) (*FetchResult, error) {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Scheme == "file" {
		path = parsed.Path
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer file.Close()

	body, err := f.readLimited(file)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	return &FetchResult{
		Body:        body,
		URL:         rawURL,
		FinalURL:    rawURL,
		ContentType: "application/json",
		FetchedAt:   time.Now().UTC(),
	}, nil
}

func (f *Fetcher) readLimited(r io.Reader) ([]byte, error) {
	if f.maxBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", errBodyTooLarge, f.maxBytes)
	}
	return body, nil
}
