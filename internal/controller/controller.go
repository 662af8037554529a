// Package controller owns the state of the download form. Every exported
// method must be called on the foreground; blocking work runs through the
// handoff package and its results come back through the Scheduler.
package controller

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/ytget/yt-picker/internal/download"
	"github.com/ytget/yt-picker/internal/format"
	"github.com/ytget/yt-picker/internal/handoff"
	"github.com/ytget/yt-picker/internal/model"
	"github.com/ytget/yt-picker/internal/platform"
	"github.com/ytget/yt-picker/internal/progress"
)

// PlaylistResolver lists the entries of a playlist URL
type PlaylistResolver interface {
	Resolve(ctx context.Context, url string) (*model.Playlist, error)
}

// ThumbnailLoader fetches a preview image
type ThumbnailLoader interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// FreeSpaceFunc reports the free bytes available in dir
type FreeSpaceFunc func(dir string) (int64, error)

// View receives state changes and user notifications on the foreground
type View interface {
	Render(s State)
	ShowError(err error)
	ShowWarning(err error)
	ShowDownloaded(path string)
}

// Deps are the collaborators of a Controller. Extractor and Scheduler are
// required; the rest are optional.
type Deps struct {
	Extractor  download.Extractor
	Playlists  PlaylistResolver
	Thumbnails ThumbnailLoader
	FreeSpace  FreeSpaceFunc
	Scheduler  handoff.Scheduler
	Tracker    *handoff.Tracker
}

// Controller implements the fetch and download flows
type Controller struct {
	extractor  download.Extractor
	playlists  PlaylistResolver
	thumbnails ThumbnailLoader
	freeSpace  FreeSpaceFunc
	sched      handoff.Scheduler
	tracker    *handoff.Tracker

	view       View
	state      State
	fetchedURL string
}

type fetchResult struct {
	input    string
	info     *model.VideoInfo
	playlist *model.Playlist
}

// New creates a controller with an empty form
func New(deps Deps) *Controller {
	tracker := deps.Tracker
	if tracker == nil {
		tracker = handoff.NewTracker(context.Background())
	}
	return &Controller{
		extractor:  deps.Extractor,
		playlists:  deps.Playlists,
		thumbnails: deps.Thumbnails,
		freeSpace:  deps.FreeSpace,
		sched:      deps.Scheduler,
		tracker:    tracker,
		view:       nopView{},
		state:      State{Selected: -1},
	}
}

// Attach sets the view and renders the current state into it
func (c *Controller) Attach(v View) {
	if v == nil {
		v = nopView{}
	}
	c.view = v
	c.render()
}

// State returns a snapshot of the form state
func (c *Controller) State() State {
	return c.state
}

// SetURL records the URL entry text. Editing the URL away from the fetched
// one clears the fetched formats.
func (c *Controller) SetURL(u string) {
	if c.state.URL == u {
		return
	}
	c.state.URL = u
	if c.state.Info != nil && strings.TrimSpace(u) != c.fetchedURL {
		c.clearInfo()
		c.state.Phase = PhaseIdle
	}
	c.render()
}

// SetSaveDir sets the download directory
func (c *Controller) SetSaveDir(dir string) {
	c.state.SaveDir = strings.TrimSpace(dir)
	c.render()
}

// SetAudioOnly switches between video and audio formats and rebuilds the
// option list.
func (c *Controller) SetAudioOnly(audioOnly bool) {
	if c.state.AudioOnly == audioOnly {
		return
	}
	c.state.AudioOnly = audioOnly
	c.rebuildOptions()
	c.render()
}

// SelectFormat chooses the option at index
func (c *Controller) SelectFormat(index int) error {
	if index < 0 || index >= len(c.state.Options) {
		return ErrNoFormat
	}
	c.state.Selected = index
	c.render()
	return nil
}

// FetchInfo validates input and starts fetching its metadata
func (c *Controller) FetchInfo(input string) error {
	u, err := ValidateURL(input)
	if err != nil {
		return c.reject(err)
	}

	ctx, id, err := c.tracker.Begin(model.OpFetch)
	if err != nil {
		return c.reject(err)
	}

	log.Printf("Controller: fetching info for %s", u)
	c.state.URL = u
	c.state.FetchBusy = true
	c.state.Phase = PhaseFetching
	c.state.LastError = nil
	c.clearInfo()
	c.render()

	handoff.Go(ctx, c.sched, id, func(ctx context.Context) (fetchResult, error) {
		return c.fetch(ctx, u)
	}, c.onFetched)
	return nil
}

// StartDownload checks the preconditions and starts downloading the selected
// option into the save directory.
func (c *Controller) StartDownload() error {
	if strings.TrimSpace(c.state.URL) == "" {
		return c.reject(ErrEmptyURL)
	}
	if c.state.SaveDir == "" {
		return c.reject(ErrEmptySaveDir)
	}
	opt, ok := c.state.SelectedOption()
	if !ok || c.state.Info == nil {
		return c.reject(ErrNoFormat)
	}
	if c.tracker.Busy(model.OpDownload) {
		return c.reject(fmt.Errorf("%s: %w", model.OpDownload, ErrBusy))
	}
	if err := c.checkFreeSpace(opt.SizeBytes); err != nil {
		return c.reject(err)
	}

	ctx, id, err := c.tracker.Begin(model.OpDownload)
	if err != nil {
		return c.reject(err)
	}

	req := download.Request{
		URL:       c.downloadURL(),
		Selector:  opt.Selector,
		OutputDir: c.state.SaveDir,
		AudioOnly: c.state.AudioOnly || opt.AudioOnly,
	}
	log.Printf("Controller: downloading %s as %q into %s", req.URL, req.Selector, req.OutputDir)

	c.state.DownloadBusy = true
	c.state.Phase = PhaseDownloading
	c.state.Percent = 0
	c.state.Progress = model.DownloadProgressEvent{Status: model.ProgressDownloading}
	c.state.OutputPath = ""
	c.state.LastError = nil
	c.render()

	handoff.Go(ctx, c.sched, id, func(ctx context.Context) (string, error) {
		return c.download(ctx, id, req)
	}, c.onDownloaded)
	return nil
}

// Close cancels outstanding work. Results arriving afterwards are dropped.
func (c *Controller) Close() {
	log.Printf("Controller: closing")
	c.tracker.CancelAll()
}

func (c *Controller) fetch(ctx context.Context, u string) (fetchResult, error) {
	res := fetchResult{input: u}
	target := u

	if platform.IsPlaylistURL(u) && c.playlists != nil {
		pl, err := c.playlists.Resolve(ctx, u)
		if err != nil {
			return res, fmt.Errorf("failed to resolve playlist: %w", err)
		}
		entry, ok := pl.First()
		if !ok {
			return res, ErrEmptyPlaylist
		}
		log.Printf("Controller: playlist %s has %d entries, using %s", pl.ID, pl.Len(), entry.VideoID)
		res.playlist = pl
		target = entry.URL
	}

	info, err := c.extractor.FetchInfo(ctx, target)
	if err != nil {
		return res, err
	}
	if info.WebpageURL == "" {
		info.WebpageURL = target
	}
	res.info = info
	return res, nil
}

func (c *Controller) onFetched(res handoff.Result[fetchResult]) {
	if !c.tracker.Finish(model.OpFetch, res.ID, res.Err) {
		log.Printf("Controller: dropping stale fetch result %s", res.ID)
		return
	}
	c.state.FetchBusy = false

	if res.Err != nil {
		log.Printf("Controller: fetch failed: %v", res.Err)
		c.fail(res.Err)
		return
	}

	c.fetchedURL = res.Value.input
	c.state.Info = res.Value.info
	c.state.Playlist = res.Value.playlist
	c.state.Phase = PhaseReady
	c.state.Percent = 0
	c.rebuildOptions()
	c.render()

	c.loadThumbnail(res.Value.info.Thumbnail)
}

func (c *Controller) loadThumbnail(u string) {
	if u == "" || c.thumbnails == nil {
		return
	}
	ctx, id, err := c.tracker.Replace(model.OpThumbnail)
	if err != nil {
		return
	}
	handoff.Go(ctx, c.sched, id, func(ctx context.Context) (image.Image, error) {
		return c.thumbnails.Fetch(ctx, u)
	}, c.onThumbnail)
}

func (c *Controller) onThumbnail(res handoff.Result[image.Image]) {
	if !c.tracker.Finish(model.OpThumbnail, res.ID, res.Err) {
		return
	}
	if res.Err != nil {
		log.Printf("Controller: thumbnail failed: %v", res.Err)
		if !errors.Is(res.Err, context.Canceled) {
			c.view.ShowWarning(fmt.Errorf("thumbnail unavailable: %w", res.Err))
		}
		return
	}
	c.state.Thumbnail = res.Value
	c.render()
}

func (c *Controller) download(ctx context.Context, id string, req download.Request) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(req.OutputDir); err != nil {
		return "", err
	}

	started := time.Now()
	return c.extractor.Download(ctx, req, func(s progress.Sample) {
		if s.Started.IsZero() {
			s.Started = started
		}
		ev := progress.Event(s, time.Now())
		c.sched.Do(func() { c.onProgress(id, ev) })
	})
}

func (c *Controller) onProgress(id string, ev model.DownloadProgressEvent) {
	op, ok := c.tracker.Get(model.OpDownload)
	if !ok || op.ID != id || !op.Status.IsActive() {
		return
	}
	c.state.Progress = ev
	c.state.Percent = ev.Percent
	c.render()
}

func (c *Controller) onDownloaded(res handoff.Result[string]) {
	if !c.tracker.Finish(model.OpDownload, res.ID, res.Err) {
		log.Printf("Controller: dropping stale download result %s", res.ID)
		return
	}
	c.state.DownloadBusy = false

	if res.Err != nil {
		log.Printf("Controller: download failed: %v", res.Err)
		c.fail(res.Err)
		return
	}

	log.Printf("Controller: download finished: %s", res.Value)
	c.state.Phase = PhaseCompleted
	c.state.Percent = 100
	c.state.Progress.Status = model.ProgressFinished
	c.state.Progress.Percent = 100
	c.state.Progress.ETA = ""
	c.state.OutputPath = res.Value
	c.render()
	c.view.ShowDownloaded(res.Value)
}

func (c *Controller) checkFreeSpace(need int64) error {
	if need <= 0 || c.freeSpace == nil {
		return nil
	}
	free, err := c.freeSpace(c.state.SaveDir)
	if err != nil {
		log.Printf("Controller: free space check skipped: %v", err)
		return nil
	}
	if free < need {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientSpace,
			model.FormatSize(need), model.FormatSize(free))
	}
	return nil
}

func (c *Controller) rebuildOptions() {
	if c.state.Info == nil {
		c.state.Options = nil
		c.state.Selected = -1
		return
	}
	c.state.Options = format.BuildOptions(c.state.Info.Formats, c.state.AudioOnly)
	c.state.Selected = 0
}

func (c *Controller) clearInfo() {
	c.tracker.Cancel(model.OpThumbnail)
	c.state.Info = nil
	c.state.Playlist = nil
	c.state.Thumbnail = nil
	c.state.Options = nil
	c.state.Selected = -1
}

func (c *Controller) downloadURL() string {
	if c.state.Info != nil && c.state.Info.WebpageURL != "" {
		return c.state.Info.WebpageURL
	}
	return strings.TrimSpace(c.state.URL)
}

func (c *Controller) fail(err error) {
	c.state.LastError = err
	if errors.Is(err, context.Canceled) {
		c.state.Phase = PhaseCanceled
		c.render()
		return
	}
	c.state.Phase = PhaseFailed
	c.render()
	c.view.ShowError(err)
}

func (c *Controller) reject(err error) error {
	log.Printf("Controller: rejected: %v", err)
	c.view.ShowError(err)
	return err
}

func (c *Controller) render() {
	c.view.Render(c.state)
}

type nopView struct{}

func (nopView) Render(State)          {}
func (nopView) ShowError(error)       {}
func (nopView) ShowWarning(error)     {}
func (nopView) ShowDownloaded(string) {}
