// Command yt-picker is the headless counterpart of the desktop form: it
// fetches the formats of a URL, prints or picks one, and downloads it with a
// terminal progress bar.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/schollz/progressbar/v3"

	"github.com/ytget/yt-picker/internal/controller"
	"github.com/ytget/yt-picker/internal/download"
	"github.com/ytget/yt-picker/internal/handoff"
	"github.com/ytget/yt-picker/internal/platform"
)

var version = "dev"

func main() {
	var (
		rawURL    string
		list      bool
		formatArg string
		audioOnly bool
		outDir    string
		verbose   bool
	)
	flag.StringVar(&rawURL, "url", "", "Video or playlist URL")
	flag.BoolVar(&list, "list", false, "List available formats and exit")
	flag.StringVar(&formatArg, "format", "0", "Index of the format to download, as printed by -list")
	flag.BoolVar(&audioOnly, "audio", false, "Download audio only (mp3)")
	flag.StringVar(&outDir, "out", platform.DefaultSaveDirectory(), "Directory to save the download in")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if rawURL == "" && flag.NArg() > 0 {
		rawURL = flag.Arg(0)
	}
	if rawURL == "" {
		fmt.Fprintln(os.Stderr, "Error: -url is required")
		flag.Usage()
		os.Exit(2)
	}
	if !verbose {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, rawURL, list, formatArg, audioOnly, outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, rawURL string, list bool, formatArg string, audioOnly bool, outDir string) error {
	svc := download.NewService()
	if err := svc.EnsureInstalled(ctx); err != nil {
		return err
	}

	loop := handoff.NewLoop()
	defer loop.Close()

	view := newTerminalView(os.Stdout)
	ctrl := controller.New(controller.Deps{
		Extractor: svc,
		Playlists: platform.NewPlaylistResolver(),
		FreeSpace: platform.FreeSpace,
		Scheduler: loop,
		Tracker:   handoff.NewTracker(ctx),
	})
	ctrl.Attach(view)
	defer ctrl.Close()

	fmt.Printf("yt-picker %s\n", version)
	ctrl.SetAudioOnly(audioOnly)
	ctrl.SetSaveDir(outDir)

	if err := ctrl.FetchInfo(rawURL); err != nil {
		return err
	}
	if err := runUntil(ctx, loop, func() bool { return !ctrl.State().FetchBusy }); err != nil {
		return err
	}
	if view.err != nil {
		return view.err
	}

	st := ctrl.State()
	fmt.Printf("Title: %s\n", st.Title())
	if st.Playlist != nil {
		fmt.Printf("Playlist: %s (%d videos), using the first video\n", st.Playlist.Title, st.Playlist.Len())
	}

	if list {
		for i, opt := range st.Options {
			fmt.Printf("%3d  %s\n", i, opt.Label)
		}
		return nil
	}

	index, err := strconv.Atoi(formatArg)
	if err != nil {
		return fmt.Errorf("invalid -format %q: %w", formatArg, err)
	}
	if err := ctrl.SelectFormat(index); err != nil {
		return fmt.Errorf("format %d: %w", index, err)
	}
	opt, _ := ctrl.State().SelectedOption()
	fmt.Printf("Format: %s\n", opt.Label)

	if err := ctrl.StartDownload(); err != nil {
		return err
	}
	if err := runUntil(ctx, loop, func() bool { return !ctrl.State().DownloadBusy }); err != nil {
		return err
	}
	view.finish()
	if view.err != nil {
		return view.err
	}

	fmt.Printf("Saved: %s\n", ctrl.State().OutputPath)
	return nil
}

// runUntil runs the foreground loop until done reports true
func runUntil(ctx context.Context, loop *handoff.Loop, done func() bool) error {
	for !done() {
		if err := loop.Step(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return errors.New("interrupted")
			}
			return err
		}
	}
	return nil
}

// terminalView renders controller state to a terminal
type terminalView struct {
	out io.Writer
	bar *progressbar.ProgressBar
	err error
}

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{out: out}
}

func (v *terminalView) Render(s controller.State) {
	if !s.DownloadBusy {
		return
	}
	if v.bar == nil {
		v.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(v.out),
			progressbar.OptionSetDescription("Downloading"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}
	desc := "Downloading"
	if s.Progress.Speed != "" {
		desc += " " + s.Progress.Speed
	}
	if s.Progress.ETA != "" {
		desc += " ETA " + s.Progress.ETA
	}
	v.bar.Describe(desc)
	_ = v.bar.Set(int(s.Percent))
}

func (v *terminalView) ShowError(err error) {
	v.err = err
}

func (v *terminalView) ShowWarning(err error) {
	fmt.Fprintf(v.out, "Warning: %v\n", err)
}

func (v *terminalView) ShowDownloaded(path string) {
	if v.bar != nil {
		_ = v.bar.Set(100)
	}
}

func (v *terminalView) finish() {
	if v.bar != nil {
		_ = v.bar.Finish()
		fmt.Fprintln(v.out)
	}
}
