package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-picker/internal/model"
	"github.com/ytget/yt-picker/internal/platform"
	"github.com/ytget/yt-picker/internal/progress"
)

// yt-dlp options used for downloads
const (
	DefaultOutputTemplate = "%(title)s.%(ext)s"
	AudioCodec            = "mp3"
	AudioQuality          = "192"
	MergeOutputFormat     = "mp4"

	DefaultProgressInterval = 500 * time.Millisecond
)

// Service implements Extractor on top of the yt-dlp binary
type Service struct {
	mu               sync.RWMutex
	outputTemplate   string
	progressInterval time.Duration
}

// NewService creates a new yt-dlp backed service
func NewService() *Service {
	return &Service{
		outputTemplate:   DefaultOutputTemplate,
		progressInterval: DefaultProgressInterval,
	}
}

// SetOutputTemplate sets the file name template used inside the output directory
func (s *Service) SetOutputTemplate(template string) {
	if template == "" {
		template = DefaultOutputTemplate
	}
	s.mu.Lock()
	s.outputTemplate = template
	s.mu.Unlock()
}

// EnsureInstalled resolves the yt-dlp binary, downloading it if missing
func (s *Service) EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	return nil
}

// FetchInfo extracts metadata for url without downloading media
func (s *Service) FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		NoPlaylist().
		NoWarnings()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to extract video information: %w", err)
	}

	info, err := ParseInfo([]byte(result.Stdout))
	if err != nil {
		return nil, err
	}
	log.Printf("Extracted info for %s: title=%q formats=%d", url, info.Title, len(info.Formats))
	return info, nil
}

// Download runs yt-dlp for req and returns the path of the written file
func (s *Service) Download(ctx context.Context, req Request, onProgress func(progress.Sample)) (string, error) {
	startedAt := time.Now()

	s.mu.RLock()
	template := s.outputTemplate
	s.mu.RUnlock()

	dl := ytdlp.New().
		NoPlaylist().
		Format(req.Selector).
		Output(filepath.Join(req.OutputDir, template))

	if req.AudioOnly {
		dl = dl.ExtractAudio().
			AudioFormat(AudioCodec).
			AudioQuality(AudioQuality)
	} else {
		dl = dl.MergeOutputFormat(MergeOutputFormat)
	}

	dl.ProgressFunc(s.progressInterval, func(update ytdlp.ProgressUpdate) {
		if onProgress != nil {
			onProgress(sampleFromUpdate(update))
		}
	})

	log.Printf("Starting download: url=%s format=%s dir=%s audio=%v", req.URL, req.Selector, req.OutputDir, req.AudioOnly)
	result, err := dl.Run(ctx, req.URL)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}

	return s.outputPath(result, req.OutputDir, startedAt), nil
}

// outputPath prefers the filename reported by yt-dlp and falls back to the
// newest file written to dir since the download started.
func (s *Service) outputPath(result *ytdlp.Result, dir string, since time.Time) string {
	if result != nil {
		info, err := result.GetExtractedInfo()
		if err == nil && len(info) > 0 && info[0].Filename != nil {
			return *info[0].Filename
		}
	}

	path, err := platform.NewestFileSince(dir, since)
	if err != nil {
		log.Printf("Could not determine output file in %s: %v", dir, err)
		return ""
	}
	return path
}

// sampleFromUpdate converts a yt-dlp progress update into a progress sample
func sampleFromUpdate(update ytdlp.ProgressUpdate) progress.Sample {
	// go-ytdlp already folds total_bytes_estimate into TotalBytes, so
	// TotalBytesEstimate stays zero for samples built here.
	return progress.Sample{
		Finished:        update.Status == ytdlp.ProgressStatusFinished,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		PercentString:   update.PercentString(),
		Started:         update.Started,
		ETA:             update.ETA(),
	}
}
