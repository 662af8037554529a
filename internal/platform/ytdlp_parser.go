package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-picker/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters
const (
	PlaylistParam = "list"
	VideoParam    = "v"
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	PlaylistSuffix      = " Playlist"
	MinPrefixLength     = 10
)

// Hosts whose list parameter names a YouTube playlist
const (
	YouTubeDomain      = "youtube.com"
	YouTubeShortDomain = "youtu.be"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistResolver lists the entries of a playlist URL using the ytdlp library
type PlaylistResolver struct {
	timeout time.Duration
}

// NewPlaylistResolver creates a new playlist resolver
func NewPlaylistResolver() *PlaylistResolver {
	return &PlaylistResolver{
		timeout: DefaultParseTimeout,
	}
}

// SetTimeout sets the timeout for resolving operations
func (p *PlaylistResolver) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// IsPlaylistURL reports whether rawURL names a playlist rather than a single
// video. A watch URL carrying both a video and a list parameter is a video.
// Only YouTube hosts have playlists; other sites go straight to yt-dlp.
func IsPlaylistURL(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !isYouTubeHost(u.Hostname()) {
		return false
	}
	q := u.Query()
	return q.Get(PlaylistParam) != "" && q.Get(VideoParam) == ""
}

func isYouTubeHost(host string) bool {
	host = strings.ToLower(host)
	return host == YouTubeDomain || host == YouTubeShortDomain || strings.HasSuffix(host, "."+YouTubeDomain)
}

// ExtractPlaylistID returns the value of the list parameter
func ExtractPlaylistID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid playlist URL: %w", err)
	}
	id := u.Query().Get(PlaylistParam)
	if id == "" {
		return "", fmt.Errorf("could not extract playlist ID from URL: %s", rawURL)
	}
	return id, nil
}

// Resolve fetches the entries of a playlist, in playlist order
func (p *PlaylistResolver) Resolve(ctx context.Context, rawURL string) (*model.Playlist, error) {
	playlistID, err := ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		entries = append(entries, model.PlaylistEntry{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}

	return &model.Playlist{
		ID:      playlistID,
		Title:   playlistTitle(entries),
		URL:     rawURL,
		Entries: entries,
	}, nil
}

// playlistTitle derives a title from the common prefix of the first titles
func playlistTitle(entries []model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	if len(entries) > 1 {
		prefix := commonPrefix(entries[0].Title, entries[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return entries[0].Title + PlaylistSuffix
}

// commonPrefix finds the common prefix between two strings
func commonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
