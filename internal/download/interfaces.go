package download

import (
	"context"

	"github.com/ytget/yt-picker/internal/model"
	"github.com/ytget/yt-picker/internal/progress"
)

// Request describes a single download
type Request struct {
	URL       string
	Selector  string // format selector understood by the extractor
	OutputDir string
	AudioOnly bool
}

// Extractor defines the interface of the extraction/download library.
type Extractor interface {
	// FetchInfo returns metadata for url without downloading media
	FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error)

	// Download writes the media described by req and returns the output path.
	// onProgress is called from the downloading goroutine.
	Download(ctx context.Context, req Request, onProgress func(progress.Sample)) (string, error)
}

var _ Extractor = (*Service)(nil)
