// Package cleanup collects shutdown jobs that components register while
// being built, to run them once on exit.
package cleanup

import (
	"errors"
	"log/slog"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	if j == nil || j.F == nil {
		return
	}
	mu.Lock()
	jobs = append(jobs, j)
	mu.Unlock()
}

// CleanUp runs the registered jobs, last registered first, and forgets
// them. Every job runs even when an earlier one failed.
func CleanUp() error {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		slog.Debug("cleanup job started", slog.String("job", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		slog.Debug("cleanup job finished", slog.String("job", j.Name))
	}
	return errors.Join(errs...)
}
