package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ppiankov/cartofolio/internal/cache"
	"github.com/ppiankov/cartofolio/internal/categorize"
	"github.com/ppiankov/cartofolio/internal/logging"
	"github.com/ppiankov/cartofolio/internal/model"
	"github.com/ppiankov/cartofolio/internal/status"
	"github.com/ppiankov/cartofolio/internal/taxonomy"
	"github.com/ppiankov/cartofolio/internal/worker"
)

// missionNamespace seeds the name-based mission identifiers
var missionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ppiankov/cartofolio/mission"))

// Loader turns per-language mission documents into snapshots
type Loader struct {
	source      model.SourceConfig
	workers     int
	fetcher     *Fetcher
	cache       cache.Cache
	categorizer *categorize.Categorizer
	registry    *status.Registry
	logger      *zap.Logger

	flights singleflight.Group // concurrent fetches of one document share a request
}

// NewLoader creates a loader from the configuration. A nil logger logs nothing.
func NewLoader(cfg *model.Config, logger *zap.Logger) (*Loader, error) {
	logger = logging.OrNop(logger)

	registry, err := status.NewRegistry(&cfg.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("status vocabulary: %w", err)
	}

	limiter := worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	for _, hr := range cfg.RateLimiting.PerHost {
		if hr.Host == "" {
			continue
		}
		limiter.SetHostRate(hr.Host, hr.RequestsPerSecond, hr.BurstSize)
	}
	fetcher := NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
		cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy).
		WithLimiter(limiter).
		WithMaxAttempts(cfg.HTTP.MaxRetries).
		WithLogger(logger)

	l := &Loader{
		source:      cfg.Source,
		workers:     cfg.Concurrency.Workers,
		fetcher:     fetcher,
		categorizer: categorize.NewCategorizer(&cfg.Categories),
		registry:    registry,
		logger:      logger,
	}

	if cfg.Cache.Enabled {
		l.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.DiskDir, cfg.Cache.DiskTTL)
	}

	return l, nil
}

// Categorizer returns the tool categorizer built from the configuration
func (l *Loader) Categorizer() *categorize.Categorizer {
	return l.categorizer
}

// Registry returns the status registry built from the configuration
func (l *Loader) Registry() *status.Registry {
	return l.registry
}

// DocumentURL resolves the document location of a language. Unsupported
// languages resolve to the fallback language's document.
func (l *Loader) DocumentURL(lang model.Language) (string, error) {
	doc, ok := l.source.Documents[lang]
	if !ok || doc == "" {
		doc, ok = l.source.Documents[model.FallbackLanguage]
		if !ok || doc == "" {
			return "", fmt.Errorf("no document configured for %q", lang)
		}
	}
	return resolveDocument(l.source.BaseURL, doc)
}

func resolveDocument(base, doc string) (string, error) {
	ref, err := url.Parse(doc)
	if err != nil {
		return "", fmt.Errorf("parse document %q: %w", doc, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	if base == "" {
		return doc, nil
	}
	if IsLocalSource(base) && !strings.HasPrefix(base, "file:") {
		return filepath.Join(base, filepath.FromSlash(doc)), nil
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", base, err)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	return baseURL.ResolveReference(ref).String(), nil
}

// Load fetches and decodes the document of one language. A logger carried
// by ctx takes precedence over the loader's own.
func (l *Loader) Load(ctx context.Context, lang model.Language) (*model.Snapshot, error) {
	logger := logging.FromContext(ctx, l.logger)
	if !lang.IsSupported() {
		logger.Warn("unsupported language, using fallback",
			zap.String("language", string(lang)),
			zap.String("fallback", string(model.FallbackLanguage)))
		lang = model.FallbackLanguage
	}
	logger = logger.With(zap.String("language", string(lang)))
	ctx = logging.WithLogger(ctx, logger)

	docURL, err := l.DocumentURL(lang)
	if err != nil {
		return nil, err
	}

	body, fetchedAt, fromCache, err := l.fetch(ctx, docURL)
	if err != nil {
		return nil, err
	}

	missions, skipped, err := Decode(docURL, body)
	if err != nil {
		if fromCache {
			_ = l.cache.Delete(cache.CacheKey(docURL))
		}
		return nil, err
	}
	for _, s := range skipped {
		logger.Warn("skipped malformed mission",
			zap.String("url", docURL),
			zap.Int("index", s.Index),
			zap.String("reason", s.Reason))
	}

	if l.cache != nil && !fromCache && !IsLocalSource(docURL) {
		entry := cache.Entry{URL: docURL, Body: body, FetchedAt: fetchedAt}
		if err := l.cache.Set(cache.CacheKey(docURL), entry, 0); err != nil {
			logger.Warn("cache write failed", zap.String("url", docURL), zap.Error(err))
		}
	}

	AssignIDs(missions)

	tax, err := taxonomy.BuildParallel(ctx, missions, l.categorizer, l.workers)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded mission document",
		zap.String("url", docURL),
		zap.Int("missions", len(missions)),
		zap.Bool("from_cache", fromCache))

	return &model.Snapshot{
		Language:  lang,
		SourceURL: docURL,
		FetchedAt: fetchedAt,
		FromCache: fromCache,
		Missions:  missions,
		Taxonomy:  tax,
		Statuses:  l.registry.LabelsFor(lang),
		Skipped:   skipped,
	}, nil
}

func (l *Loader) fetch(ctx context.Context, docURL string) ([]byte, time.Time, bool, error) {
	logger := logging.FromContext(ctx, l.logger)
	if l.cache != nil && !IsLocalSource(docURL) {
		if entry, ok := l.cache.Get(cache.CacheKey(docURL)); ok {
			logger.Debug("document cache hit", zap.String("url", docURL))
			return entry.Body, entry.FetchedAt, true, nil
		}
	}

	// the shared fetch outlives any single caller; each caller stops waiting
	// when its own context ends
	flight := l.flights.DoChan(docURL, func() (any, error) {
		return l.fetcher.FetchWithRetry(context.WithoutCancel(ctx), docURL)
	})

	select {
	case res := <-flight:
		if res.Err != nil {
			return nil, time.Time{}, false, res.Err
		}
		if res.Shared {
			logger.Debug("joined in-flight fetch", zap.String("url", docURL))
		}
		result := res.Val.(*FetchResult)
		return result.Body, result.FetchedAt, false, nil
	case <-ctx.Done():
		return nil, time.Time{}, false, &TransportError{URL: docURL, Err: ctx.Err()}
	}
}

// LoadAll loads several languages concurrently. Every language gets a
// result; a failing language does not affect the others.
func (l *Loader) LoadAll(ctx context.Context, langs []model.Language) []*worker.LoadResult {
	return worker.NewBatchProcessor(l, l.workers).ProcessLanguages(ctx, langs)
}

// Decode parses a mission document. The top-level value must be a JSON
// array; entries that are not mission objects are skipped and reported.
func Decode(docURL string, body []byte) ([]model.Mission, []model.SkippedRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil, &DecodeError{URL: docURL, Err: fmt.Errorf("empty document")}
	}
	if trimmed[0] != '[' {
		return nil, nil, &DecodeError{URL: docURL, Err: fmt.Errorf("top-level value is not an array")}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, nil, &DecodeError{URL: docURL, Err: err}
	}

	missions := make([]model.Mission, 0, len(raw))
	var skipped []model.SkippedRecord
	for i, entry := range raw {
		entry = bytes.TrimSpace(entry)
		if len(entry) == 0 || entry[0] != '{' {
			skipped = append(skipped, model.SkippedRecord{Index: i, Reason: "not an object"})
			continue
		}

		var m model.Mission
		if err := json.Unmarshal(entry, &m); err != nil {
			skipped = append(skipped, model.SkippedRecord{Index: i, Reason: err.Error()})
			continue
		}
		m.Position = i
		missions = append(missions, m)
	}

	return missions, skipped, nil
}

// AssignIDs gives every mission without an explicit id a stable identifier
// derived from its document position and coordinates. Both are shared by the
// language variants of a document, so the same mission keeps its ID across
// languages even when entries before it are skipped.
func AssignIDs(missions []model.Mission) {
	for i := range missions {
		if missions[i].ID != "" {
			continue
		}
		name := strconv.Itoa(missions[i].Position) + "|" + compactJSON(missions[i].LatLon)
		missions[i].ID = uuid.NewSHA1(missionNamespace, []byte(name)).String()
	}
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}
