// Package progress converts raw download callbacks into progress events.
package progress

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/yt-picker/internal/model"
)

// Sample is a raw progress callback as reported by the downloader
type Sample struct {
	Finished           bool
	DownloadedBytes    int64
	TotalBytes         int64
	TotalBytesEstimate int64
	PercentString      string // e.g. " 12.3%"
	Started            time.Time
	ETA                time.Duration
}

// Percent derives the completion percentage. It prefers the exact total, then
// the estimated total, then the library supplied percentage string.
func Percent(s Sample) float64 {
	var p float64
	switch {
	case s.TotalBytes > 0:
		p = float64(s.DownloadedBytes) / float64(s.TotalBytes) * 100
	case s.TotalBytesEstimate > 0:
		p = float64(s.DownloadedBytes) / float64(s.TotalBytesEstimate) * 100
	default:
		p = ParsePercent(s.PercentString)
	}
	return clamp(p)
}

// ParsePercent parses strings like "12.3%" or " 12.3 % ". Unparsable input yields 0.
func ParsePercent(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Event builds the progress event for a sample, measured at now
func Event(s Sample, now time.Time) model.DownloadProgressEvent {
	ev := model.DownloadProgressEvent{
		Status:          model.ProgressDownloading,
		DownloadedBytes: s.DownloadedBytes,
		TotalBytes:      s.TotalBytes,
		Percent:         Percent(s),
		ETA:             model.FormatETA(int(s.ETA.Seconds())),
	}
	if ev.TotalBytes <= 0 {
		ev.TotalBytes = s.TotalBytesEstimate
	}
	if s.Finished {
		ev.Status = model.ProgressFinished
		ev.Percent = 100
		ev.ETA = ""
	}
	if !s.Started.IsZero() {
		ev.Speed = Speed(s.DownloadedBytes, now.Sub(s.Started))
	}
	return ev
}

// Speed returns the average transfer rate, or "" when it cannot be computed
func Speed(bytes int64, elapsed time.Duration) string {
	if bytes <= 0 || elapsed <= 0 {
		return ""
	}
	perSecond := float64(bytes) / elapsed.Seconds()
	return fmt.Sprintf("%s/s", model.FormatSize(int64(perSecond)))
}

func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
