package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-picker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	downloadDirEntry    *widget.Entry
	filenameEntry       *widget.Entry
	thumbnailWidthEntry *widget.Entry
	audioOnlyCheck      *widget.Check
	autoRevealCheck     *widget.Check
	languageSelect      *widget.Select
	languageCodes       map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been stored.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: loc,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	NewSettingsDialog(settings, loc, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.filenameEntry = widget.NewEntry()
	sd.filenameEntry.SetPlaceHolder(config.DefaultFilenameTemplate)

	sd.thumbnailWidthEntry = widget.NewEntry()
	sd.thumbnailWidthEntry.SetPlaceHolder(strconv.Itoa(config.MinThumbnailWidth) + "-" + strconv.Itoa(config.MaxThumbnailWidth))

	sd.audioOnlyCheck = widget.NewCheck(t(KeyAudioOnlyDefault), nil)
	sd.autoRevealCheck = widget.NewCheck(t(KeyAutoReveal), nil)

	sd.languageCodes = make(map[string]string)
	var names []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := widget.NewForm(
		widget.NewFormItem(t(KeyDownloadDirectory), downloadDirRow),
		widget.NewFormItem(t(KeyFilenameTemplate), sd.filenameEntry),
		widget.NewFormItem(t(KeyThumbnailWidth), sd.thumbnailWidthEntry),
		widget.NewFormItem(t(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(form, sd.audioOnlyCheck, sd.autoRevealCheck)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 360))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.filenameEntry.SetText(sd.settings.GetFilenameTemplate())
	sd.thumbnailWidthEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailWidth()))
	sd.audioOnlyCheck.SetChecked(sd.settings.GetAudioOnly())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the dialog values
func (sd *SettingsDialog) apply() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	sd.settings.SetFilenameTemplate(sd.filenameEntry.Text)

	if width, err := strconv.Atoi(sd.thumbnailWidthEntry.Text); err == nil {
		sd.settings.SetThumbnailWidth(width)
	}

	sd.settings.SetAudioOnly(sd.audioOnlyCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
