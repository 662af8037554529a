package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-picker/internal/config"
	"github.com/ytget/yt-picker/internal/controller"
	"github.com/ytget/yt-picker/internal/download"
	"github.com/ytget/yt-picker/internal/handoff"
	"github.com/ytget/yt-picker/internal/platform"
	"github.com/ytget/yt-picker/internal/thumbnail"
	"github.com/ytget/yt-picker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-picker"
	AppName = "YT Picker"
)

func main() {
	fmt.Printf("YT Picker v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	downloadSvc := download.NewService()
	downloadSvc.SetOutputTemplate(settings.GetFilenameTemplate())

	thumbs := thumbnail.NewFetcher(nil)
	thumbs.SetWidth(settings.GetThumbnailWidth())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := downloadSvc.EnsureInstalled(ctx); err != nil {
			log.Printf("yt-dlp is not available: %v", err)
		}
	}()

	ctrl := controller.New(controller.Deps{
		Extractor:  downloadSvc,
		Playlists:  platform.NewPlaylistResolver(),
		Thumbnails: thumbs,
		FreeSpace:  platform.FreeSpace,
		Scheduler:  handoff.FyneScheduler{},
		Tracker:    handoff.NewTracker(ctx),
	})

	rootUI := ui.NewRootUI(myWindow, ctrl, settings)
	rootUI.OnSettingsSaved = func() {
		downloadSvc.SetOutputTemplate(settings.GetFilenameTemplate())
		thumbs.SetWidth(settings.GetThumbnailWidth())
	}

	myWindow.ShowAndRun()
}
