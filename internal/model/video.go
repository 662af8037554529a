package model

import (
	"fmt"
	"strings"
)

// NoneCodec is the codec value the extractor reports for an absent stream
const NoneCodec = "none"

// SizeUnknown is shown when a format does not report its size
const SizeUnknown = "N/A"

// SourceFormat is one format record as reported by the extractor
type SourceFormat struct {
	ID             string
	Ext            string
	VCodec         string
	ACodec         string
	Height         int
	FPS            float64
	TBR            float64 // total bitrate, kbit/s
	ABR            float64 // audio bitrate, kbit/s
	Filesize       int64
	FilesizeApprox int64
	FormatNote     string
}

// HasVideo reports whether the record carries a video stream
func (f SourceFormat) HasVideo() bool {
	return f.VCodec != "" && f.VCodec != NoneCodec
}

// IsAudioOnly reports whether the record has no video stream
func (f SourceFormat) IsAudioOnly() bool {
	return !f.HasVideo()
}

// Size returns the exact size, the approximate size, or 0 when neither is known
func (f SourceFormat) Size() int64 {
	if f.Filesize > 0 {
		return f.Filesize
	}
	if f.FilesizeApprox > 0 {
		return f.FilesizeApprox
	}
	return 0
}

// Bitrate returns the audio bitrate, falling back to the total bitrate
func (f SourceFormat) Bitrate() float64 {
	if f.ABR > 0 {
		return f.ABR
	}
	return f.TBR
}

// VideoInfo is the metadata fetched for a single video
type VideoInfo struct {
	ID         string
	Title      string
	Thumbnail  string
	WebpageURL string
	Uploader   string
	Duration   float64
	Formats    []SourceFormat
}

// FormatOption is one entry of the quality selector
type FormatOption struct {
	Label     string
	Selector  string // opaque token passed to the extractor
	SizeBytes int64  // 0 if unknown
	AudioOnly bool
}

// GetSizeString returns the option size in human readable form
func (o FormatOption) GetSizeString() string {
	return FormatSize(o.SizeBytes)
}

// DownloadProgressEvent is a single progress notification from a download
type DownloadProgressEvent struct {
	Status          ProgressStatus
	DownloadedBytes int64   // 0 if unknown
	TotalBytes      int64   // 0 if unknown
	Percent         float64 // 0 to 100
	Speed           string  // human readable speed (e.g., "1.2 MB/s"), empty if unknown
	ETA             string  // hh:mm:ss or mm:ss, empty if unknown
}

// FormatSize formats a byte count with binary units, or "N/A" if not positive
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return SizeUnknown
	}
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTP"[exp])
}

// FormatETA returns seconds formatted as hh:mm:ss or mm:ss, or "" if unknown
func FormatETA(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// DisplayTitle returns a single-line title suitable for labels and notifications
func (v *VideoInfo) DisplayTitle() string {
	if v == nil {
		return ""
	}
	title := strings.Join(strings.Fields(v.Title), " ")
	if title == "" {
		return v.ID
	}
	return title
}
