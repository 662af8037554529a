package controller

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/yt-picker/internal/handoff"
)

// Validation and scheduling errors reported to the user
var (
	ErrEmptyURL          = errors.New("please enter a video URL")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrEmptySaveDir      = errors.New("please choose a save location")
	ErrNoFormat          = errors.New("no format selected, fetch the video info first")
	ErrInsufficientSpace = errors.New("not enough free disk space")
	ErrEmptyPlaylist     = errors.New("playlist has no videos")

	// ErrBusy is returned while an operation of the same kind is in flight
	ErrBusy = handoff.ErrBusy
)

// ValidateURL trims input and checks that it is an http(s) URL
func ValidateURL(input string) (string, error) {
	u := strings.TrimSpace(input)
	if u == "" {
		return "", ErrEmptyURL
	}

	parsed, err := url.Parse(u)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalidURL)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return u, nil
}
