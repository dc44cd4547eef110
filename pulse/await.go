package pulse

import (
	"context"
)

type result[T any] struct {
	value T
	err   error
}

// await runs the blocking call fn on its own goroutine and waits for its
// result or for ctx to be done, whichever comes first. If ctx wins, a value
// that fn still produces later is passed to release.
func await[T any](ctx context.Context, fn func() (T, error), release func(T)) (T, error) {
	ch := make(chan result[T], 1)

	go func() {
		value, err := fn()
		ch <- result[T]{value: value, err: err}
	}()

	select {
	case res := <-ch:
		return res.value, res.err

	case <-ctx.Done():
		go func() {
			res := <-ch
			if res.err == nil && release != nil {
				release(res.value)
			}
		}()

		var zeroT T
		return zeroT, ctx.Err()
	}
}
