// Package lifecycle runs an ordered resource bootstrap with rollback:
// resources acquire in order, and any failure releases the already
// acquired ones in reverse before the error is reported.
package lifecycle

import "fmt"

// Resource pairs an acquire step with its release. Release must be safe to
// call exactly once after a successful Acquire.
type Resource struct {
	Name    string
	Acquire func() error
	Release func()
}

// Start acquires the resources in order. On the first failure it releases
// the previously acquired resources in reverse order and returns an error
// naming the failed step. On success it returns a stop function that
// releases everything in reverse order; call it exactly once.
func Start(resources []Resource) (stop func(), err error) {
	for i, r := range resources {
		if err := r.Acquire(); err != nil {
			releaseReverse(resources[:i])
			return nil, fmt.Errorf("acquire %s: %w", r.Name, err)
		}
	}
	return func() { releaseReverse(resources) }, nil
}

func releaseReverse(acquired []Resource) {
	for i := len(acquired) - 1; i >= 0; i-- {
		acquired[i].Release()
	}
}
