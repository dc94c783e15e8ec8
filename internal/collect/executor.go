// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/pdiddy/marine-engine/pkg/types"
)

// TaskError records one task's failure for run metadata.
type TaskError struct {
	Task   string `json:"task" yaml:"task"`
	Detail string `json:"error" yaml:"error"`
}

// taskOutcome carries one finished task back to the collecting loop.
type taskOutcome struct {
	name string
	res  types.Result
	err  error
}

// runTasks executes all tasks concurrently under a pool of at most
// maxWorkers, with a per-task timeout. One task's failure or timeout never
// affects its siblings: the failure is recorded and that task's result is
// absent. Completion order is nondeterministic; each task writes only its
// own key, so the returned map is independent of arrival order. The worker
// pool is scoped to this call and fully drained before it returns.
func runTasks(ctx context.Context, tasks []Task, maxWorkers int, timeout time.Duration, w io.Writer) (map[string]types.Result, []TaskError) {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if timeout <= 0 {
		timeout = defaultTaskTimeout
	}

	ch := make(chan taskOutcome, len(tasks))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, t := range tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			ch <- runOne(ctx, t, timeout)
		}(t)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	results := make(map[string]types.Result, len(tasks))
	var failures []TaskError
	for oc := range ch {
		if oc.err != nil {
			failures = append(failures, TaskError{Task: oc.name, Detail: oc.err.Error()})
			fmt.Fprintf(w, "warning: source %s failed: %v\n", oc.name, oc.err)
			continue
		}
		results[oc.name] = oc.res
	}

	// Stable failure order for reporting; arrival order is meaningless.
	sort.Slice(failures, func(i, j int) bool { return failures[i].Task < failures[j].Task })

	return results, failures
}

// runOne invokes a single task under its own timeout. A task that exceeds
// the timeout is abandoned: its goroutine keeps the cancelled context, and
// any late result is discarded via the buffered channel.
func runOne(ctx context.Context, t Task, timeout time.Duration) taskOutcome {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan taskOutcome, 1)
	go func() {
		res, err := t.Run(tctx)
		done <- taskOutcome{name: t.Name, res: res, err: err}
	}()

	select {
	case oc := <-done:
		return oc
	case <-tctx.Done():
		return taskOutcome{name: t.Name, err: fmt.Errorf("timed out after %v", timeout)}
	}
}
