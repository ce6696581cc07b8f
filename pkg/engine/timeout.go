package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chazu/fieldzone/pkg/layout"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

var (
	ErrTimeout    = fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	ErrSuperseded = errors.New("evaluation superseded by newer request")
)

// evalResult carries one evaluation's output across the result channel.
type evalResult struct {
	layout *layout.Layout
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch and gives up after
// EvalTimeout. A result whose generation is no longer current is discarded.
//
// On timeout the evaluation goroutine may still be running; the generation
// check discards its result when it eventually completes.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*layout.Layout, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, ErrSuperseded
		}
		return res.layout, res.errors, res.err

	case <-timer.C:
		return nil, nil, ErrTimeout
	}
}
