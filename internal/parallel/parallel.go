// Package parallel runs independent reads concurrently for a single request.
package parallel

import "golang.org/x/sync/errgroup"

// Run starts every fn concurrently and waits for all of them. It returns the
// first error observed; siblings are not cancelled and their results should be
// discarded by the caller when an error is returned.
func Run(fns ...func() error) error {
	var g errgroup.Group
	for _, fn := range fns {
		g.Go(fn)
	}
	return g.Wait()
}
