package concurrency

import (
	"context"
	"time"
)

// ThrottledWorker runs a job per argument, at most one every spacing.
type ThrottledWorker struct {
	spacing     time.Duration
	jobCallback func(ctx context.Context, arg string) error
}

func NewThrottledWorker(spacing time.Duration, jobCallback func(ctx context.Context, arg string) error) ThrottledWorker {
	return ThrottledWorker{spacing: spacing, jobCallback: jobCallback}
}

// Run processes jobArgs in order and returns the job errors keyed by argument.
// It stops early when ctx is cancelled.
func (w *ThrottledWorker) Run(ctx context.Context, jobArgs []string) map[string]error {
	errs := map[string]error{}
	if len(jobArgs) == 0 {
		return errs
	}

	jobArgsChannel := make(chan string, len(jobArgs))
	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)

	limiter := time.NewTicker(w.spacing)
	defer limiter.Stop()

	first := true
	for arg := range jobArgsChannel {
		if !first {
			select {
			case <-ctx.Done():
				return errs
			case <-limiter.C:
			}
		}
		first = false

		if err := w.jobCallback(ctx, arg); err != nil {
			errs[arg] = err
		}
	}
	return errs
}
