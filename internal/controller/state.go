package controller

import (
	"image"

	"github.com/ytget/yt-picker/internal/model"
)

// Phase is the coarse state shown in the status line
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseReady
	PhaseDownloading
	PhaseCompleted
	PhaseFailed
	PhaseCanceled
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFetching:
		return "Fetching"
	case PhaseReady:
		return "Ready"
	case PhaseDownloading:
		return "Downloading"
	case PhaseCompleted:
		return "Completed"
	case PhaseFailed:
		return "Failed"
	case PhaseCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// State is everything the form displays. Only the foreground mutates it.
type State struct {
	URL       string
	Info      *model.VideoInfo
	Playlist  *model.Playlist // set when URL pointed at a playlist
	Options   []model.FormatOption
	Selected  int // index into Options, -1 when nothing is selectable
	SaveDir   string
	AudioOnly bool

	Phase      Phase
	Percent    float64
	Progress   model.DownloadProgressEvent
	Thumbnail  image.Image
	OutputPath string
	LastError  error

	FetchBusy    bool
	DownloadBusy bool
}

// SelectedOption returns the chosen format option
func (s State) SelectedOption() (model.FormatOption, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return model.FormatOption{}, false
	}
	return s.Options[s.Selected], true
}

// CanFetch reports whether the Get Info control should be enabled
func (s State) CanFetch() bool {
	return !s.FetchBusy
}

// CanDownload reports whether the Download control should be enabled
func (s State) CanDownload() bool {
	_, ok := s.SelectedOption()
	return ok && s.Info != nil && !s.DownloadBusy
}

// Title returns the display title of the fetched video
func (s State) Title() string {
	return s.Info.DisplayTitle()
}
