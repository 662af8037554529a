package download

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/yt-picker/internal/model"
)

// ErrNoFormats is returned when the extractor reports no formats at all
var ErrNoFormats = errors.New("no formats found")

// infoJSON mirrors the subset of the yt-dlp info dictionary the app reads.
// Numeric fields are floats because extractors are not consistent about them.
type infoJSON struct {
	Type       string       `json:"_type"`
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Thumbnail  string       `json:"thumbnail"`
	WebpageURL string       `json:"webpage_url"`
	Uploader   string       `json:"uploader"`
	Duration   float64      `json:"duration"`
	Formats    []formatJSON `json:"formats"`
	Entries    []*infoJSON  `json:"entries"`
}

type formatJSON struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Height         float64 `json:"height"`
	FPS            float64 `json:"fps"`
	TBR            float64 `json:"tbr"`
	ABR            float64 `json:"abr"`
	Filesize       float64 `json:"filesize"`
	FilesizeApprox float64 `json:"filesize_approx"`
	FormatNote     string  `json:"format_note"`
}

// ParseInfo decodes the single-JSON info dictionary printed by yt-dlp. For a
// playlist result the first non-empty entry is used.
func ParseInfo(data []byte) (*model.VideoInfo, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, errors.New("could not retrieve video information")
	}

	var raw infoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode video information: %w", err)
	}

	entry := &raw
	if raw.Type == "playlist" || len(raw.Entries) > 0 {
		entry = nil
		for _, e := range raw.Entries {
			if e != nil {
				entry = e
				break
			}
		}
		if entry == nil {
			return nil, errors.New("could not retrieve video information")
		}
	}

	if len(entry.Formats) == 0 {
		return nil, ErrNoFormats
	}

	info := &model.VideoInfo{
		ID:         entry.ID,
		Title:      entry.Title,
		Thumbnail:  entry.Thumbnail,
		WebpageURL: entry.WebpageURL,
		Uploader:   entry.Uploader,
		Duration:   entry.Duration,
		Formats:    make([]model.SourceFormat, 0, len(entry.Formats)),
	}
	for _, f := range entry.Formats {
		info.Formats = append(info.Formats, model.SourceFormat{
			ID:             f.FormatID,
			Ext:            f.Ext,
			VCodec:         f.VCodec,
			ACodec:         f.ACodec,
			Height:         int(f.Height),
			FPS:            f.FPS,
			TBR:            f.TBR,
			ABR:            f.ABR,
			Filesize:       int64(f.Filesize),
			FilesizeApprox: int64(f.FilesizeApprox),
			FormatNote:     f.FormatNote,
		})
	}
	return info, nil
}
