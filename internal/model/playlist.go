package model

// PlaylistEntry is a single video listed in a playlist
type PlaylistEntry struct {
	VideoID string
	Title   string
	URL     string
}

// Playlist is a resolved playlist with its entries in playlist order
type Playlist struct {
	ID      string
	Title   string
	URL     string
	Entries []PlaylistEntry
}

// First returns the first entry, or false if the playlist is empty
func (p *Playlist) First() (PlaylistEntry, bool) {
	if p == nil || len(p.Entries) == 0 {
		return PlaylistEntry{}, false
	}
	return p.Entries[0], true
}

// Len returns the number of entries
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}
