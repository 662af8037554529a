package format

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-picker/internal/model"
)

func sampleFormats() []model.SourceFormat {
	return []model.SourceFormat{
		{ID: "140", Ext: "m4a", VCodec: "none", ACodec: "mp4a.40.2", ABR: 129.5, Filesize: 3_400_000},
		{ID: "137", Ext: "mp4", VCodec: "avc1.640028", ACodec: "none", Height: 1080, FPS: 30, TBR: 4400},
		{ID: "22", Ext: "mp4", VCodec: "avc1.64001F", ACodec: "mp4a.40.2", Height: 720, FPS: 30, TBR: 1200, FilesizeApprox: 50_000_000},
		{ID: "251", Ext: "webm", VCodec: "none", ACodec: "opus", ABR: 160},
		{ID: "299", Ext: "mp4", VCodec: "avc1.64002a", ACodec: "none", Height: 1080, FPS: 60, TBR: 6000},
		{ID: "sb0", Ext: "mhtml", VCodec: "none", ACodec: "none"},
		{ID: "303", Ext: "webm", VCodec: "vp9", ACodec: "none", Height: 1080, FPS: 60, TBR: 4000},
	}
}

func TestBuildOptions_VideoMode(t *testing.T) {
	options := BuildOptions(sampleFormats(), false)

	require.Len(t, options, 5)
	assert.Equal(t, BestVideoSelector, options[0].Selector)
	assert.Equal(t, BestVideoLabel, options[0].Label)

	var selectors []string
	for _, o := range options[1:] {
		selectors = append(selectors, o.Selector)
		assert.False(t, o.AudioOnly)
	}
	// video-only streams are merged with the best audio
	assert.Equal(t, []string{"299+bestaudio/299", "303+bestaudio/303", "137+bestaudio/137", "22"}, selectors)
	assert.Equal(t, int64(50_000_000), options[4].SizeBytes)
}

func TestBuildOptions_AudioMode(t *testing.T) {
	options := BuildOptions(sampleFormats(), true)

	require.Len(t, options, 4)
	assert.Equal(t, BestAudioSelector, options[0].Selector)
	assert.True(t, options[0].AudioOnly)

	var selectors []string
	for _, o := range options[1:] {
		selectors = append(selectors, o.Selector)
		assert.True(t, o.AudioOnly)
	}
	// storyboard has no bitrate and sorts last
	assert.Equal(t, []string{"251", "140", "sb0"}, selectors)
}

func TestBuildOptions_Empty(t *testing.T) {
	for _, audio := range []bool{false, true} {
		options := BuildOptions(nil, audio)
		require.Len(t, options, 1)
		assert.Equal(t, Auto(audio), options[0])
	}
}

func TestFilter_DropsRecordsWithoutID(t *testing.T) {
	kept := Filter([]model.SourceFormat{{VCodec: "vp9"}, {ID: "1", VCodec: "vp9"}}, false)
	require.Len(t, kept, 1)
	assert.Equal(t, "1", kept[0].ID)
}

func TestBuildOptions_LabelsIdentifyOneOption(t *testing.T) {
	formats := []model.SourceFormat{
		{ID: "hls-1500", Ext: "mp4", VCodec: "avc1", ACodec: "mp4a", Height: 720, FPS: 30, TBR: 1500},
		{ID: "hls-2500", Ext: "mp4", VCodec: "avc1", ACodec: "mp4a", Height: 720, FPS: 30, TBR: 2500},
	}

	options := BuildOptions(formats, false)
	require.Len(t, options, 3)
	assert.Equal(t, "hls-2500", options[1].Selector)
	assert.Equal(t, "hls-1500", options[2].Selector)
	assert.Equal(t, "720p · avc1 · 30fps · mp4a · mp4 · N/A", options[1].Label)
	assert.Equal(t, "720p · avc1 · 30fps · mp4a · mp4 · N/A · hls-1500", options[2].Label)
}

func TestUniqueLabel(t *testing.T) {
	seen := map[string]bool{}
	assert.Equal(t, "a", uniqueLabel("a", "1", seen))
	assert.Equal(t, "a · 1", uniqueLabel("a", "1", seen))
	assert.Equal(t, "a · 1 #2", uniqueLabel("a", "1", seen))
}

func TestSelector(t *testing.T) {
	assert.Equal(t, "137+bestaudio/137", Selector(model.SourceFormat{ID: "137", VCodec: "avc1", ACodec: "none"}))
	assert.Equal(t, "22", Selector(model.SourceFormat{ID: "22", VCodec: "avc1", ACodec: "mp4a"}))
	assert.Equal(t, "140", Selector(model.SourceFormat{ID: "140", VCodec: "none", ACodec: "mp4a"}))
	// unknown audio codec is left to the extractor
	assert.Equal(t, "18", Selector(model.SourceFormat{ID: "18", VCodec: "avc1"}))
}

func randomFormats(r *rand.Rand, n int) []model.SourceFormat {
	heights := []int{0, 144, 360, 720, 1080, 2160}
	fpss := []float64{0, 24, 30, 60}
	vcodecs := []string{"none", "", "vp9", "avc1"}
	out := make([]model.SourceFormat, n)
	for i := range out {
		out[i] = model.SourceFormat{
			ID:     string(rune('a' + i%26)),
			VCodec: vcodecs[r.Intn(len(vcodecs))],
			Height: heights[r.Intn(len(heights))],
			FPS:    fpss[r.Intn(len(fpss))],
			TBR:    float64(r.Intn(5000)),
			ABR:    float64(r.Intn(3) * 64),
		}
	}
	return out
}

func TestBuildOptions_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		formats := randomFormats(r, r.Intn(30))
		for _, audio := range []bool{false, true} {
			options := BuildOptions(formats, audio)
			require.NotEmpty(t, options)
			assert.Equal(t, Auto(audio), options[0], "automatic option must be first")

			labels := make(map[string]bool, len(options))
			for _, o := range options {
				assert.False(t, labels[o.Label], "duplicate label %q", o.Label)
				labels[o.Label] = true
			}

			kept := Filter(formats, audio)
			if audio {
				SortAudio(kept)
			} else {
				SortVideo(kept)
			}
			for i, f := range kept {
				assert.Equal(t, audio, f.IsAudioOnly())
				if i == 0 {
					continue
				}
				prev := kept[i-1]
				if audio {
					assert.GreaterOrEqual(t, prev.Bitrate(), f.Bitrate())
					continue
				}
				assert.False(t, less(prev, f), "video order must be non-increasing: %+v before %+v", prev, f)
			}
		}
	}
}

// less reports whether a sorts strictly below b by (height, fps, tbr)
func less(a, b model.SourceFormat) bool {
	if a.Height != b.Height {
		return a.Height < b.Height
	}
	if a.FPS != b.FPS {
		return a.FPS < b.FPS
	}
	return a.TBR < b.TBR
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		format   model.SourceFormat
		expected string
	}{
		{
			name:     "video",
			format:   model.SourceFormat{Ext: "mp4", VCodec: "avc1", ACodec: "mp4a", Height: 720, FPS: 30, Filesize: 1536},
			expected: "720p · avc1 · 30fps · mp4a · mp4 · 1.50 KB",
		},
		{
			name:     "video without details",
			format:   model.SourceFormat{VCodec: "vp9"},
			expected: "N/A · vp9 · N/A · N/A · N/A · N/A",
		},
		{
			name:     "audio",
			format:   model.SourceFormat{Ext: "webm", VCodec: "none", ACodec: "opus", ABR: 160},
			expected: "Audio Only · opus · 160kbps · webm · N/A",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Label(test.format))
		})
	}
}
