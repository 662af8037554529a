// Package thumbnail downloads a video thumbnail and scales it for preview.
package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Defaults for thumbnail loading
const (
	DefaultWidth   = 320
	DefaultTimeout = 15 * time.Second

	// MaxBodySize caps the thumbnail download
	MaxBodySize = 10 << 20
)

// Fetcher retrieves and resizes thumbnails
type Fetcher struct {
	client *http.Client
	width  atomic.Int64
}

// NewFetcher creates a fetcher using client, or a default client if nil
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	f := &Fetcher{client: client}
	f.width.Store(DefaultWidth)
	return f
}

// SetWidth sets the target width; non-positive values restore the default
func (f *Fetcher) SetWidth(width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	f.width.Store(int64(width))
}

// Width returns the target width
func (f *Fetcher) Width() int {
	return int(f.width.Load())
}

// Fetch downloads url and returns the decoded image scaled to the target width
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	data, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail: %w", err)
	}
	return Resize(img, f.Width()), nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch thumbnail: status=%d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}
	return data, nil
}

// Resize scales img to width, preserving the aspect ratio
func Resize(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || width <= 0 || b.Dx() == width {
		return img
	}

	height := int(float64(b.Dy()) * float64(width) / float64(b.Dx()))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
