package taxonomy

import (
	"context"

	"github.com/ppiankov/cartofolio/internal/model"
	"github.com/ppiankov/cartofolio/internal/worker"
)

// minShardSize keeps small collections on a single shard
const minShardSize = 64

type shardJob struct {
	missions    []model.Mission
	categorizer Categorizer
}

type shardResult struct {
	acc *accumulator
	err error
}

func (r *shardResult) GetError() error { return r.err }

func (j *shardJob) Execute(ctx context.Context) worker.Result {
	if err := ctx.Err(); err != nil {
		return &shardResult{err: err}
	}
	acc := newAccumulator()
	for i := range j.missions {
		acc.add(&j.missions[i], j.categorizer)
	}
	return &shardResult{acc: acc}
}

// BuildParallel is Build spread over a worker pool. Shards are merged into
// sets before the final sort, so the output is identical to Build.
func BuildParallel(ctx context.Context, missions []model.Mission, categorizer Categorizer, workers int) (model.Taxonomy, error) {
	if workers <= 1 || len(missions) <= minShardSize {
		return Build(missions, categorizer), nil
	}

	shardSize := (len(missions) + workers - 1) / workers
	if shardSize < minShardSize {
		shardSize = minShardSize
	}

	var jobs []worker.Job
	for start := 0; start < len(missions); start += shardSize {
		end := start + shardSize
		if end > len(missions) {
			end = len(missions)
		}
		jobs = append(jobs, &shardJob{missions: missions[start:end], categorizer: categorizer})
	}

	pool := worker.NewPool(ctx, workers)
	results := pool.Run(jobs)

	if err := ctx.Err(); err != nil {
		return model.Taxonomy{}, err
	}

	merged := newAccumulator()
	for _, r := range results {
		sr := r.(*shardResult)
		if sr.err != nil {
			return model.Taxonomy{}, sr.err
		}
		merged.merge(sr.acc)
	}
	if len(results) != len(jobs) {
		return model.Taxonomy{}, context.Canceled
	}

	return merged.taxonomy(), nil
}
