// Package driver runs independent elaborations in parallel. Compilations
// share no state, so each job gets its own Compilation, binder, and
// diagnostic sink; results land at per-job indices and need no locking.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"silica/internal/binder"
	"silica/internal/config"
	"silica/internal/diag"
	"silica/internal/sem"
)

// Job names one design and the builder that populates its compilation from
// syntax.
type Job struct {
	Name  string
	Build func(*sem.Compilation)
}

// Result is the outcome of one elaborated job.
type Result struct {
	Name string
	Comp *sem.Compilation
	Bag  *diag.Bag
}

// Elaborate runs one job to completion: build, force every deferred
// property in creation order, then issue the elaboration tasks.
func Elaborate(cfg config.Elaboration, job Job) Result {
	comp := sem.NewCompilation(sem.Options{
		MaxDiagnostics:     cfg.MaxDiagnostics,
		LintImplicitStatic: cfg.LintImplicitStatic,
		Binder:             binder.New(),
	})
	if job.Build != nil {
		job.Build(comp)
	}
	comp.ForceElaborate()
	comp.IssueElabTasks()
	return Result{Name: job.Name, Comp: comp, Bag: comp.Diagnostics()}
}

// ElaborateAll elaborates the jobs in parallel. Result order matches job
// order regardless of scheduling; each job's diagnostic order is fixed by
// its own creation-order forcing.
func ElaborateAll(ctx context.Context, cfg config.Elaboration, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, max(len(jobs), 1)))

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = Elaborate(cfg, job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
