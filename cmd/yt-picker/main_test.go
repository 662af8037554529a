package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-picker/internal/controller"
	"github.com/ytget/yt-picker/internal/handoff"
	"github.com/ytget/yt-picker/internal/model"
)

func TestRunUntil(t *testing.T) {
	loop := handoff.NewLoop()
	defer loop.Close()

	done := false
	go loop.Do(func() { done = true })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, runUntil(ctx, loop, func() bool { return done }))
	assert.True(t, done)
}

func TestRunUntil_Interrupted(t *testing.T) {
	loop := handoff.NewLoop()
	defer loop.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runUntil(ctx, loop, func() bool { return false })
	assert.EqualError(t, err, "interrupted")
}

func TestTerminalView(t *testing.T) {
	var buf bytes.Buffer
	v := newTerminalView(&buf)

	v.Render(controller.State{})
	assert.Nil(t, v.bar, "no bar before a download starts")

	v.Render(controller.State{
		DownloadBusy: true,
		Percent:      42,
		Progress:     model.DownloadProgressEvent{Speed: "1.00 MB/s", ETA: "00:10"},
	})
	require.NotNil(t, v.bar)
	assert.Contains(t, buf.String(), "42%")

	v.ShowDownloaded("/tmp/video.mp4")
	v.finish()

	v.ShowError(errors.New("boom"))
	assert.EqualError(t, v.err, "boom")

	v.ShowWarning(errors.New("thumbnail unavailable"))
	assert.Contains(t, buf.String(), "Warning: thumbnail unavailable")
}
