package handoff

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsInScheduleOrder(t *testing.T) {
	loop := NewLoop()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		loop.Do(func() { got = append(got, i) })
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, loop.Step(ctx))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 0, loop.Len())
}

func TestLoop_DoIsNotReentrant(t *testing.T) {
	loop := NewLoop()

	var trace []string
	loop.Do(func() {
		trace = append(trace, "outer start")
		loop.Do(func() { trace = append(trace, "inner") })
		trace = append(trace, "outer end")
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, loop.Step(ctx))

	assert.Equal(t, []string{"outer start", "outer end", "inner"}, trace)
}

func TestLoop_StepWaitsForBackgroundWork(t *testing.T) {
	loop := NewLoop()

	ran := false
	go func() {
		time.Sleep(20 * time.Millisecond)
		loop.Do(func() { ran = true })
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, loop.Step(ctx))
	assert.True(t, ran)
}

func TestLoop_RunStopsOnCancel(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// closed loops drop new work
	loop.Do(func() { t.Error("closure ran after Close") })
	assert.Equal(t, 0, loop.Len())
}

func TestGo_DeliversResultOnForeground(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var mu sync.Mutex
	var results []Result[int]
	Go(ctx, loop, "op-1", func(context.Context) (int, error) {
		return 42, nil
	}, func(r Result[int]) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	})

	require.NoError(t, loop.Step(ctx))
	require.Len(t, results, 1)
	assert.Equal(t, "op-1", results[0].ID)
	assert.Equal(t, 42, results[0].Value)
	assert.NoError(t, results[0].Err)
}

func TestGo_ReportsErrorsAndPanics(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	boom := errors.New("boom")
	var errs []error
	Go(ctx, loop, "a", func(context.Context) (string, error) {
		return "", boom
	}, func(r Result[string]) { errs = append(errs, r.Err) })
	require.NoError(t, loop.Step(ctx))

	Go(ctx, loop, "b", func(context.Context) (string, error) {
		panic("kaboom")
	}, func(r Result[string]) { errs = append(errs, r.Err) })
	require.NoError(t, loop.Step(ctx))

	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], boom)
	assert.ErrorContains(t, errs[1], "kaboom")
}
