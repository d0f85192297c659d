package worker

import (
	"context"
	"sort"

	"github.com/ppiankov/cartofolio/internal/model"
)

// Loader loads the mission snapshot of one language
type Loader interface {
	Load(ctx context.Context, lang model.Language) (*model.Snapshot, error)
}

// LoadJob loads a single language document
type LoadJob struct {
	Language model.Language
	Loader   Loader
}

// Execute executes the load job
func (j *LoadJob) Execute(ctx context.Context) Result {
	snapshot, err := j.Loader.Load(ctx, j.Language)
	if err != nil {
		return &LoadResult{
			Language: j.Language,
			Error:    err,
		}
	}
	return &LoadResult{
		Language: j.Language,
		Snapshot: snapshot,
	}
}

// LoadResult represents the result of a load job
type LoadResult struct {
	Language model.Language
	Snapshot *model.Snapshot
	Error    error
}

// GetError returns the error from the load result
func (r *LoadResult) GetError() error {
	return r.Error
}

// BatchProcessor loads several languages concurrently
type BatchProcessor struct {
	loader      Loader
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(loader Loader, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		loader:      loader,
		concurrency: concurrency,
	}
}

// ProcessLanguages loads every language and returns one result per language,
// in the order the languages were given. Duplicates are loaded once.
// A failing language never prevents the others from loading.
func (b *BatchProcessor) ProcessLanguages(ctx context.Context, langs []model.Language) []*LoadResult {
	if len(langs) == 0 {
		return []*LoadResult{}
	}

	order := make(map[model.Language]int, len(langs))
	jobs := make([]Job, 0, len(langs))
	for _, lang := range langs {
		if _, dup := order[lang]; dup {
			continue
		}
		order[lang] = len(order)
		jobs = append(jobs, &LoadJob{Language: lang, Loader: b.loader})
	}

	pool := NewPool(ctx, b.concurrency)
	results := pool.Run(jobs)

	loadResults := make([]*LoadResult, 0, len(jobs))
	done := make(map[model.Language]bool, len(jobs))
	for _, result := range results {
		r := result.(*LoadResult)
		loadResults = append(loadResults, r)
		done[r.Language] = true
	}

	// jobs dropped by a cancelled pool still get a result
	for lang := range order {
		if !done[lang] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			loadResults = append(loadResults, &LoadResult{Language: lang, Error: err})
		}
	}

	sort.Slice(loadResults, func(i, j int) bool {
		return order[loadResults[i].Language] < order[loadResults[j].Language]
	})

	return loadResults
}
