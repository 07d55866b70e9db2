package utils

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
)

// Outcome is the tagged result of one fan-out item
type Outcome[R any] struct {
	Index int
	Value R
	Err   error
	// Done is false for items that were never started
	Done bool
	// Seq is the completion order, starting at 1
	Seq int
}

// Failed reports whether the item carries an error
func (o Outcome[R]) Failed() bool {
	return o.Err != nil
}

// Halt is a fail-fast signal shared by several fan-outs. The first failure
// stops new items from starting everywhere; items already running are left
// to finish.
type Halt struct {
	once    sync.Once
	stopped atomic.Bool
	err     error
}

// NewHalt creates a halt that has not fired
func NewHalt() *Halt {
	return &Halt{}
}

// Fail fires the halt. Only the first error is kept.
func (h *Halt) Fail(err error) {
	h.once.Do(func() {
		h.err = err
		h.stopped.Store(true)
	})
}

// Stopped reports whether the halt has fired
func (h *Halt) Stopped() bool {
	return h.stopped.Load()
}

// Err returns the error that fired the halt, or nil
func (h *Halt) Err() error {
	if !h.stopped.Load() {
		return nil
	}
	return h.err
}

// ParallelMap runs fn for each item with at most workers goroutines and
// returns one Outcome per item, in input order.
//
// Once any item fails no further items are started. Items already running
// are not interrupted; their results are recorded and left to the caller.
func ParallelMap[T, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) []Outcome[R] {
	return ParallelMapHalt(ctx, NewHalt(), items, workers, fn)
}

// ParallelMapHalt is ParallelMap with a halt shared across fan-outs.
// A failure here fires halt, and a halt fired elsewhere stops this fan-out
// from starting new items. Items skipped because of another fan-out's
// failure carry that failure with the largest Seq.
func ParallelMapHalt[T, R any](ctx context.Context, halt *Halt, items []T, workers int, fn func(context.Context, T) (R, error)) []Outcome[R] {
	outcomes := make([]Outcome[R], len(items))
	for i := range outcomes {
		outcomes[i].Index = i
	}
	if len(items) == 0 {
		return outcomes
	}

	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	taskChan := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var seq int
	var failed atomic.Bool

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range taskChan {
				value, err := fn(ctx, items[idx])
				if err != nil {
					failed.Store(true)
					halt.Fail(err)
				}

				mu.Lock()
				seq++
				outcomes[idx] = Outcome[R]{Index: idx, Value: value, Err: err, Done: true, Seq: seq}
				mu.Unlock()
			}
		}()
	}

submit:
	for i := range items {
		if halt.Stopped() || ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break submit
		case taskChan <- i:
		}
	}
	close(taskChan)
	wg.Wait()

	if failed.Load() {
		return outcomes
	}

	skipped := ctx.Err()
	if skipped == nil {
		skipped = halt.Err()
	}
	if skipped != nil {
		for i := range outcomes {
			if !outcomes[i].Done {
				outcomes[i].Err = skipped
				outcomes[i].Seq = math.MaxInt
			}
		}
	}

	return outcomes
}

// Join returns the values of all outcomes in input order, or the error of
// the earliest completed failure.
func Join[R any](outcomes []Outcome[R]) ([]R, error) {
	first := -1
	for i, o := range outcomes {
		if o.Failed() && (first < 0 || o.Seq < outcomes[first].Seq) {
			first = i
		}
	}
	if first >= 0 {
		return nil, outcomes[first].Err
	}

	values := make([]R, len(outcomes))
	for i, o := range outcomes {
		values[i] = o.Value
	}
	return values, nil
}
