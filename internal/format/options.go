// Package format turns the extractor's format records into the ordered list
// of options shown in the quality selector.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ytget/yt-picker/internal/model"
)

// Selectors understood by the extractor for automatic picks
const (
	BestVideoSelector = "bestvideo*+bestaudio/best"
	BestAudioSelector = "bestaudio/best"
)

// Labels of the synthetic automatic options
const (
	BestVideoLabel = "Best Quality (Auto)"
	BestAudioLabel = "Best Audio (Auto)"
	AudioOnlyLabel = "Audio Only"
)

const labelSeparator = " · "

// mergeAudioSuffix pairs a video-only stream with the best audio, falling
// back to the stream alone when no audio can be merged.
const mergeAudioSuffix = "+bestaudio/"

// BuildOptions filters and orders formats for the requested mode. The
// automatic option is always first.
func BuildOptions(formats []model.SourceFormat, audioOnly bool) []model.FormatOption {
	kept := Filter(formats, audioOnly)
	if audioOnly {
		SortAudio(kept)
	} else {
		SortVideo(kept)
	}

	auto := Auto(audioOnly)
	seen := map[string]bool{auto.Label: true}

	options := make([]model.FormatOption, 0, len(kept)+1)
	options = append(options, auto)
	for _, f := range kept {
		options = append(options, model.FormatOption{
			Label:     uniqueLabel(Label(f), f.ID, seen),
			Selector:  Selector(f),
			SizeBytes: f.Size(),
			AudioOnly: f.IsAudioOnly(),
		})
	}
	return options
}

// Auto returns the synthetic best-pick option for the mode
func Auto(audioOnly bool) model.FormatOption {
	if audioOnly {
		return model.FormatOption{Label: BestAudioLabel, Selector: BestAudioSelector, AudioOnly: true}
	}
	return model.FormatOption{Label: BestVideoLabel, Selector: BestVideoSelector}
}

// Filter keeps audio-only records in audio mode and video records otherwise.
// Records without an ID cannot be selected and are dropped.
func Filter(formats []model.SourceFormat, audioOnly bool) []model.SourceFormat {
	kept := make([]model.SourceFormat, 0, len(formats))
	for _, f := range formats {
		if f.ID == "" {
			continue
		}
		if f.IsAudioOnly() == audioOnly {
			kept = append(kept, f)
		}
	}
	return kept
}

// Selector returns the extractor selector for a record. Video-only streams
// are merged with the best audio so the download is not silent.
func Selector(f model.SourceFormat) string {
	if f.HasVideo() && f.ACodec == model.NoneCodec {
		return f.ID + mergeAudioSuffix + f.ID
	}
	return f.ID
}

// SortVideo orders by height, then frame rate, then total bitrate, descending
func SortVideo(formats []model.SourceFormat) {
	sort.SliceStable(formats, func(i, j int) bool {
		if formats[i].Height != formats[j].Height {
			return formats[i].Height > formats[j].Height
		}
		if formats[i].FPS != formats[j].FPS {
			return formats[i].FPS > formats[j].FPS
		}
		return formats[i].TBR > formats[j].TBR
	})
}

// SortAudio orders by bitrate, descending
func SortAudio(formats []model.SourceFormat) {
	sort.SliceStable(formats, func(i, j int) bool {
		return formats[i].Bitrate() > formats[j].Bitrate()
	})
}

// Label renders the human readable description of a format record
func Label(f model.SourceFormat) string {
	size := model.FormatSize(f.Size())
	if f.IsAudioOnly() {
		return strings.Join([]string{
			AudioOnlyLabel,
			orNA(f.ACodec),
			bitrateText(f.Bitrate()),
			orNA(f.Ext),
			size,
		}, labelSeparator)
	}

	resolution := model.SizeUnknown
	if f.Height > 0 {
		resolution = fmt.Sprintf("%dp", f.Height)
	}
	fps := model.SizeUnknown
	if f.FPS > 0 {
		fps = fmt.Sprintf("%gfps", f.FPS)
	}
	return strings.Join([]string{
		resolution,
		orNA(f.VCodec),
		fps,
		orNA(f.ACodec),
		orNA(f.Ext),
		size,
	}, labelSeparator)
}

// uniqueLabel disambiguates label with the format ID when an earlier option
// already uses it, so a label always identifies one option.
func uniqueLabel(label, id string, seen map[string]bool) string {
	candidate := label
	if seen[candidate] {
		candidate = label + labelSeparator + id
	}
	for n := 2; seen[candidate]; n++ {
		candidate = fmt.Sprintf("%s%s%s #%d", label, labelSeparator, id, n)
	}
	seen[candidate] = true
	return candidate
}

func bitrateText(kbps float64) string {
	if kbps <= 0 {
		return model.SizeUnknown
	}
	return fmt.Sprintf("%.0fkbps", kbps)
}

func orNA(s string) string {
	if s == "" {
		return model.SizeUnknown
	}
	return s
}
