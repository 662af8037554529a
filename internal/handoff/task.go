package handoff

import (
	"context"
	"fmt"
	"log"
)

// Result is the outcome of a background operation
type Result[T any] struct {
	ID    string
	Value T
	Err   error
}

// Go runs work on a new goroutine and delivers its result to done through s.
// done runs exactly once on the foreground, also when work panics.
func Go[T any](ctx context.Context, s Scheduler, id string, work func(context.Context) (T, error), done func(Result[T])) {
	go func() {
		res := Result[T]{ID: id}
		defer func() {
			if r := recover(); r != nil {
				log.Printf("handoff: operation %s panicked: %v", id, r)
				res.Err = fmt.Errorf("operation panicked: %v", r)
			}
			s.Do(func() { done(res) })
		}()
		res.Value, res.Err = work(ctx)
	}()
}
