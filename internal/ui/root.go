package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-picker/internal/config"
	"github.com/ytget/yt-picker/internal/controller"
	"github.com/ytget/yt-picker/internal/handoff"
	"github.com/ytget/yt-picker/internal/model"
	"github.com/ytget/yt-picker/internal/platform"
)

// RootUI is the download form. It implements controller.View.
type RootUI struct {
	window       fyne.Window
	ctrl         *controller.Controller
	settings     *config.Settings
	localization *Localization
	// sched delivers the outcome of file actions back to the UI goroutine
	sched handoff.Scheduler

	// OnSettingsSaved runs after the settings dialog stored new values
	OnSettingsSaved func()

	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	infoBtn       *widget.Button
	titleLabel    *widget.Label
	thumbnail     *canvas.Image
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	sizeLabel     *widget.Label
	audioCheck    *widget.Check
	saveLabel     *widget.Label
	saveEntry     *widget.Entry
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label

	// buttons of the latest completion dialog
	openFileBtn *widget.Button
	revealBtn   *widget.Button

	// rendering suppresses widget callbacks while state is applied
	rendering bool
	last      controller.State
	warning   string
}

var _ controller.View = (*RootUI)(nil)

// NewRootUI builds the form in window and attaches it to ctrl
func NewRootUI(window fyne.Window, ctrl *controller.Controller, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		ctrl:         ctrl,
		settings:     settings,
		localization: localization,
		sched:        handoff.FyneScheduler{},
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	ctrl.SetSaveDir(settings.GetDownloadDirectory())
	ctrl.SetAudioOnly(settings.GetAudioOnly())
	ctrl.Attach(ui)

	window.SetOnClosed(ctrl.Close)

	log.Printf("UI setup completed successfully")
	return ui
}

func (ui *RootUI) setupUI() {
	t := ui.localization.GetText
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(t(KeyVideoURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(t(KeyEnterURL))
	ui.urlEntry.OnChanged = func(text string) {
		if !ui.rendering {
			ui.ctrl.SetURL(text)
		}
	}
	ui.urlEntry.OnSubmitted = func(string) { ui.onGetInfo() }

	ui.infoBtn = widget.NewButton(t(KeyGetInfo), ui.onGetInfo)
	ui.infoBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn, ui.urlLabel)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn, ui.urlLabel)
	}
	urlRow := container.NewBorder(nil, nil, left, ui.infoBtn, ui.urlEntry)

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ui.thumbnail = canvas.NewImageFromImage(nil)
	ui.thumbnail.FillMode = canvas.ImageFillContain
	ui.thumbnail.SetMinSize(fyne.NewSize(float32(ui.settings.GetThumbnailWidth()), ThumbnailMinHeight))
	ui.thumbnail.Hide()

	ui.qualityLabel = widget.NewLabel(t(KeyQuality))
	ui.qualitySelect = widget.NewSelect(nil, func(string) {
		if ui.rendering {
			return
		}
		if err := ui.ctrl.SelectFormat(ui.qualitySelect.SelectedIndex()); err != nil {
			log.Printf("UI: select format: %v", err)
		}
	})
	ui.sizeLabel = widget.NewLabel(fmt.Sprintf(t(KeyFileSize), model.SizeUnknown))
	ui.audioCheck = widget.NewCheck(t(KeyAudioOnly), func(on bool) {
		if !ui.rendering {
			ui.ctrl.SetAudioOnly(on)
		}
	})
	qualityBox := container.NewVBox(ui.qualityLabel, ui.qualitySelect, container.NewHBox(ui.sizeLabel, ui.audioCheck))

	ui.saveLabel = widget.NewLabel(t(KeySaveLocation))
	ui.saveEntry = widget.NewEntry()
	ui.saveEntry.OnChanged = func(text string) {
		if !ui.rendering {
			ui.ctrl.SetSaveDir(text)
		}
	}
	ui.browseBtn = widget.NewButton(IconFolder+" "+t(KeyBrowse), ui.onBrowse)
	saveBox := container.NewVBox(ui.saveLabel, container.NewBorder(nil, nil, nil, ui.browseBtn, ui.saveEntry))

	ui.downloadBtn = widget.NewButton(t(KeyDownload), ui.onDownload)
	ui.downloadBtn.Importance = widget.SuccessImportance
	ui.downloadBtn.Disable()

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(t(KeyStatusIdle))
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		urlRow,
		ui.titleLabel,
		container.NewCenter(ui.thumbnail),
		adaptiveRow(qualityBox, saveBox),
		container.NewCenter(ui.downloadBtn),
		ui.progressBar,
		ui.statusLabel,
	)
	pad := formPadding()
	ui.window.SetContent(container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), content))
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with the current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.urlLabel.SetText(t(KeyVideoURL))
	ui.urlEntry.SetPlaceHolder(t(KeyEnterURL))
	ui.infoBtn.SetText(t(KeyGetInfo))
	ui.qualityLabel.SetText(t(KeyQuality))
	ui.audioCheck.Text = t(KeyAudioOnly)
	ui.audioCheck.Refresh()
	ui.saveLabel.SetText(t(KeySaveLocation))
	ui.browseBtn.SetText(IconFolder + " " + t(KeyBrowse))
	ui.downloadBtn.SetText(t(KeyDownload))
	ui.Render(ui.last)
}

func (ui *RootUI) onGetInfo() {
	ui.warning = ""
	// errors are shown through ShowError
	_ = ui.ctrl.FetchInfo(ui.urlEntry.Text)
}

func (ui *RootUI) onDownload() {
	ui.ctrl.SetSaveDir(ui.saveEntry.Text)
	_ = ui.ctrl.StartDownload()
}

func (ui *RootUI) onBrowse() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.ShowError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.ctrl.SetSaveDir(uri.Path())
	}, ui.window)

	if dir := ui.last.SaveDir; dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.ctrl.SetSaveDir(ui.settings.GetDownloadDirectory())
		ui.thumbnail.SetMinSize(fyne.NewSize(float32(ui.settings.GetThumbnailWidth()), ThumbnailMinHeight))
		if ui.OnSettingsSaved != nil {
			ui.OnSettingsSaved()
		}
		ui.statusLabel.SetText(ui.localization.GetText(KeySettingsSaved))
	})
}

// Render applies controller state to the widgets
func (ui *RootUI) Render(s controller.State) {
	ui.rendering = true
	defer func() { ui.rendering = false }()

	if s.CanFetch() {
		ui.infoBtn.Enable()
	} else {
		ui.infoBtn.Disable()
	}
	if s.CanDownload() {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}

	ui.titleLabel.SetText(s.Title())
	ui.renderOptions(s)

	if ui.audioCheck.Checked != s.AudioOnly {
		ui.audioCheck.SetChecked(s.AudioOnly)
	}
	if ui.saveEntry.Text != s.SaveDir {
		ui.saveEntry.SetText(s.SaveDir)
	}

	if s.Thumbnail != ui.thumbnail.Image {
		ui.thumbnail.Image = s.Thumbnail
		if s.Thumbnail == nil {
			ui.thumbnail.Hide()
		} else {
			ui.thumbnail.Show()
		}
		ui.thumbnail.Refresh()
	}

	ui.progressBar.SetValue(s.Percent / 100)
	ui.statusLabel.SetText(ui.statusText(s))
	ui.last = s
}

func (ui *RootUI) renderOptions(s controller.State) {
	labels := make([]string, len(s.Options))
	for i, o := range s.Options {
		labels[i] = o.Label
	}
	if !sameStrings(labels, ui.qualitySelect.Options) {
		ui.qualitySelect.Options = labels
		ui.qualitySelect.Refresh()
	}

	if s.Selected < 0 {
		ui.qualitySelect.ClearSelected()
	} else if ui.qualitySelect.SelectedIndex() != s.Selected {
		ui.qualitySelect.SetSelectedIndex(s.Selected)
	}

	size := model.SizeUnknown
	if opt, ok := s.SelectedOption(); ok {
		size = opt.GetSizeString()
	}
	ui.sizeLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyFileSize), size))
}

func (ui *RootUI) statusText(s controller.State) string {
	t := ui.localization.GetText
	switch s.Phase {
	case controller.PhaseFetching:
		return t(KeyStatusFetching)
	case controller.PhaseReady:
		text := t(KeyStatusReady)
		if s.Playlist != nil {
			text = fmt.Sprintf(t(KeyStatusPlaylist), s.Playlist.Title, s.Playlist.Len())
		}
		if ui.warning != "" {
			text += MiddleDotSeparator + ui.warning
		}
		return text
	case controller.PhaseDownloading:
		p := s.Progress
		if p.Status == model.ProgressFinished {
			return t(KeyStatusProcessing)
		}
		if p.DownloadedBytes == 0 && s.Percent == 0 {
			return t(KeyStatusStarting)
		}
		speed := p.Speed
		if speed == "" {
			speed = model.SizeUnknown
		}
		text := fmt.Sprintf(t(KeyStatusDownloading), s.Percent, model.FormatSize(p.TotalBytes), speed)
		if p.ETA != "" {
			text += MiddleDotSeparator + p.ETA
		}
		return text
	case controller.PhaseCompleted:
		return t(KeyStatusCompleted)
	case controller.PhaseFailed:
		if s.LastError != nil {
			return t(KeyStatusFailed) + ": " + s.LastError.Error()
		}
		return t(KeyStatusFailed)
	case controller.PhaseCanceled:
		return t(KeyStatusCanceled)
	default:
		return t(KeyStatusIdle)
	}
}

// ShowError shows err in a modal dialog
func (ui *RootUI) ShowError(err error) {
	dialog.ShowError(err, ui.window)
}

// ShowWarning shows a non-fatal problem in the status line
func (ui *RootUI) ShowWarning(err error) {
	log.Printf("UI: warning: %v", err)
	ui.warning = ui.localization.GetText(KeyThumbnailUnavailable)
	ui.statusLabel.SetText(ui.statusText(ui.last))
}

// ShowDownloaded reports a finished download and offers to open the file
func (ui *RootUI) ShowDownloaded(path string) {
	t := ui.localization.GetText
	title := t(KeyDownloadCompleted)
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   title,
		Content: ui.last.Title(),
	})

	if path == "" {
		dialog.ShowInformation(t(KeySuccess), title, ui.window)
		return
	}

	var d *dialog.CustomDialog
	ui.openFileBtn = widget.NewButton(t(KeyOpenFile), func() {
		d.Hide()
		ui.runFileAction(platform.OpenFileWithDefaultApp, path)
	})
	ui.revealBtn = widget.NewButton(t(KeyShowInFolder), func() {
		d.Hide()
		ui.runFileAction(platform.OpenFileInManager, path)
	})
	content := container.NewVBox(
		widget.NewLabel(title),
		container.NewHBox(layout.NewSpacer(), ui.openFileBtn, ui.revealBtn),
	)
	d = dialog.NewCustom(t(KeySuccess), t(KeyClose), content, ui.window)
	d.Show()

	if ui.settings.GetAutoRevealOnComplete() {
		ui.runFileAction(platform.OpenFileInManager, path)
	}
}

// runFileAction runs action off the UI goroutine; launching a file manager
// can block for as long as the child process lives.
func (ui *RootUI) runFileAction(action func(string) error, path string) {
	handoff.Go(context.Background(), ui.sched, "", func(context.Context) (struct{}, error) {
		return struct{}{}, action(path)
	}, func(res handoff.Result[struct{}]) {
		if res.Err != nil {
			log.Printf("Error opening file %s: %v", path, res.Err)
			ui.statusLabel.SetText(ui.localization.GetText(KeyErrorOpeningFile) + ": " + res.Err.Error())
		}
	})
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
