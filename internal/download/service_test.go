package download

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

const singleVideoJSON = `{
  "_type": "video",
  "id": "dQw4w9WgXcQ",
  "title": "Never Gonna Give You Up",
  "thumbnail": "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
  "webpage_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
  "uploader": "Rick Astley",
  "duration": 212,
  "formats": [
    {"format_id": "251", "ext": "webm", "vcodec": "none", "acodec": "opus", "abr": 129.9, "filesize": 3437753},
    {"format_id": "137", "ext": "mp4", "vcodec": "avc1.640028", "acodec": "none", "height": 1080, "fps": 25, "tbr": 4400.5, "filesize": null, "filesize_approx": 117000000.0},
    {"format_id": "sb0", "ext": "mhtml", "vcodec": "none", "acodec": "none", "height": null, "fps": null}
  ]
}`

func TestNewService(t *testing.T) {
	service := NewService()

	if service.outputTemplate != DefaultOutputTemplate {
		t.Errorf("Expected outputTemplate to be '%s', got '%s'", DefaultOutputTemplate, service.outputTemplate)
	}

	if service.progressInterval != DefaultProgressInterval {
		t.Errorf("Expected progressInterval to be %v, got %v", DefaultProgressInterval, service.progressInterval)
	}
}

func TestSetOutputTemplate(t *testing.T) {
	service := NewService()

	service.SetOutputTemplate("%(uploader)s - %(title)s.%(ext)s")
	if service.outputTemplate != "%(uploader)s - %(title)s.%(ext)s" {
		t.Errorf("Expected custom template, got '%s'", service.outputTemplate)
	}

	service.SetOutputTemplate("")
	if service.outputTemplate != DefaultOutputTemplate {
		t.Errorf("Empty template should default to %s, got %s", DefaultOutputTemplate, service.outputTemplate)
	}
}

func TestParseInfo_SingleVideo(t *testing.T) {
	info, err := ParseInfo([]byte(singleVideoJSON))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if info.Title != "Never Gonna Give You Up" {
		t.Errorf("Expected title 'Never Gonna Give You Up', got '%s'", info.Title)
	}
	if !strings.HasSuffix(info.Thumbnail, "maxresdefault.jpg") {
		t.Errorf("Unexpected thumbnail: %s", info.Thumbnail)
	}
	if len(info.Formats) != 3 {
		t.Fatalf("Expected 3 formats, got %d", len(info.Formats))
	}

	audio := info.Formats[0]
	if !audio.IsAudioOnly() || audio.ABR != 129.9 || audio.Filesize != 3437753 {
		t.Errorf("Unexpected audio format: %+v", audio)
	}

	video := info.Formats[1]
	if !video.HasVideo() || video.Height != 1080 || video.FPS != 25 {
		t.Errorf("Unexpected video format: %+v", video)
	}
	if video.Size() != 117000000 {
		t.Errorf("Expected approximate size 117000000, got %d", video.Size())
	}

	if info.Formats[2].Height != 0 {
		t.Errorf("Null height should decode as 0, got %d", info.Formats[2].Height)
	}
}

func TestParseInfo_PlaylistUsesFirstEntry(t *testing.T) {
	data := `{"_type": "playlist", "id": "PL1", "title": "Mix", "entries": [null, ` + singleVideoJSON + `]}`

	info, err := ParseInfo([]byte(data))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if info.ID != "dQw4w9WgXcQ" {
		t.Errorf("Expected first entry id, got '%s'", info.ID)
	}
}

func TestParseInfo_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "   "},
		{"invalid json", "{not json"},
		{"empty playlist", `{"_type": "playlist", "entries": []}`},
		{"no formats", `{"id": "x", "title": "t"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseInfo([]byte(test.input)); err == nil {
				t.Errorf("Expected error for %s input", test.name)
			}
		})
	}

	_, err := ParseInfo([]byte(`{"id": "x", "formats": []}`))
	if !errors.Is(err, ErrNoFormats) {
		t.Errorf("Expected ErrNoFormats, got %v", err)
	}
}

func TestSampleFromUpdate(t *testing.T) {
	started := time.Now().Add(-time.Second)
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 50,
		TotalBytes:      200,
		Started:         started,
	}

	sample := sampleFromUpdate(update)

	if sample.Finished {
		t.Error("Downloading update should not be finished")
	}
	if sample.DownloadedBytes != 50 || sample.TotalBytes != 200 {
		t.Errorf("Unexpected byte counts: %+v", sample)
	}
	if sample.TotalBytesEstimate != 0 {
		t.Errorf("Estimate arrives folded into TotalBytes, got %d", sample.TotalBytesEstimate)
	}
	if !sample.Started.Equal(started) {
		t.Errorf("Expected Started %v, got %v", started, sample.Started)
	}

	update.Status = ytdlp.ProgressStatusFinished
	if !sampleFromUpdate(update).Finished {
		t.Error("Finished update should be finished")
	}
}
