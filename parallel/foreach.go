// Package parallel contains the parallel ForEach() loops and other concurrency primitives
// used for evaluating many instances at once.
package parallel

import "context"
import "runtime"
import "sync"

import "github.com/klauspost/cpuid/v2"
import "golang.org/x/sync/errgroup"

// Threads returns the default number of worker goroutines, one per logical core.
func Threads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = Threads()
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// ForEachErr is ForEach whose body may fail. The first error cancels the context
// passed to the remaining bodies and is returned.
func ForEachErr(ctx context.Context, length, limit int, body func(ctx context.Context, i int) error) error {
	if limit <= 0 {
		limit = Threads()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < length; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return body(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// the parent may be cancelled after the last body returned
	return ctx.Err()
}
