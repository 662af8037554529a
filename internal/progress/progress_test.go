package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-picker/internal/model"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		sample   Sample
		expected float64
	}{
		{"exact total", Sample{DownloadedBytes: 50, TotalBytes: 200}, 25.0},
		{"estimated total", Sample{DownloadedBytes: 50, TotalBytes: 0, TotalBytesEstimate: 100}, 50.0},
		{"percent string", Sample{DownloadedBytes: 50, PercentString: "12.3%"}, 12.3},
		{"padded percent string", Sample{PercentString: "  7.5 % "}, 7.5},
		{"exact total wins over string", Sample{DownloadedBytes: 1, TotalBytes: 4, PercentString: "90%"}, 25.0},
		{"nothing known", Sample{DownloadedBytes: 50}, 0},
		{"garbage string", Sample{PercentString: "N/A"}, 0},
		{"clamped high", Sample{DownloadedBytes: 300, TotalBytes: 200}, 100},
		{"clamped low", Sample{PercentString: "-4%"}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.expected, Percent(test.sample), 1e-9)
		})
	}
}

func TestEvent(t *testing.T) {
	now := time.Now()
	ev := Event(Sample{
		DownloadedBytes:    2 * 1024 * 1024,
		TotalBytesEstimate: 8 * 1024 * 1024,
		Started:            now.Add(-2 * time.Second),
		ETA:                90 * time.Second,
	}, now)

	assert.Equal(t, model.ProgressDownloading, ev.Status)
	assert.InDelta(t, 25.0, ev.Percent, 1e-9)
	assert.Equal(t, int64(8*1024*1024), ev.TotalBytes)
	assert.Equal(t, "1.00 MB/s", ev.Speed)
	assert.Equal(t, "01:30", ev.ETA)
}

func TestEvent_Finished(t *testing.T) {
	ev := Event(Sample{Finished: true, DownloadedBytes: 10, TotalBytes: 40, ETA: time.Minute}, time.Now())

	assert.Equal(t, model.ProgressFinished, ev.Status)
	assert.Equal(t, 100.0, ev.Percent)
	assert.Empty(t, ev.ETA)
	assert.Empty(t, ev.Speed)
}

func TestSpeed(t *testing.T) {
	assert.Equal(t, "", Speed(0, time.Second))
	assert.Equal(t, "", Speed(100, 0))
	assert.Equal(t, "512 B/s", Speed(1024, 2*time.Second))
}
