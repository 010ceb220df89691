package session

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zipsweep/zipsweep/internal/model"
)

// Job is one named sweep to run as part of a batch. Run must create and
// tear down its own browser session; jobs share nothing.
type Job struct {
	Name string
	Run  func(ctx context.Context) (*model.RunSummary, error)
}

// BatchRunner executes independent sweeps with bounded parallelism.
// Each job still drives its widget session single threaded; the bound
// only controls how many sessions exist at once.
type BatchRunner struct {
	limit int
}

// NewBatchRunner returns a runner allowing up to limit concurrent jobs.
// A limit below one is treated as one.
func NewBatchRunner(limit int) *BatchRunner {
	if limit < 1 {
		limit = 1
	}
	return &BatchRunner{limit: limit}
}

// Run executes all jobs and returns their summaries in job order. The
// first job error cancels the remaining jobs; summaries of jobs that
// did not finish are nil.
func (b *BatchRunner) Run(ctx context.Context, jobs []Job) ([]*model.RunSummary, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.limit)
	summaries := make([]*model.RunSummary, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			summary, err := job.Run(ctx)
			if err != nil {
				return fmt.Errorf("profile %s: %w", job.Name, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summaries, err
	}
	return summaries, nil
}
