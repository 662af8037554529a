package download

// Package download is the boundary to the extraction/download library. It
// wraps yt-dlp (via github.com/lrstanley/go-ytdlp) behind the Extractor
// interface: a metadata query that never downloads media, and a download that
// reports progress samples until the file is written.
