package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-picker/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyAudioOnly          = "audio_only_default"
	KeyFilenameTemplate   = "filename_template"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyThumbnailWidth     = "thumbnail_width"
)

// Default values
const (
	DefaultAudioOnly          = false
	DefaultFilenameTemplate   = "%(title)s.%(ext)s"
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	DefaultThumbnailWidth     = 320
)

// Thumbnail width limits
const (
	MinThumbnailWidth = 120
	MaxThumbnailWidth = 640
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory, falling
// back to the user's Downloads folder or the working directory.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		return platform.DefaultSaveDirectory()
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetAudioOnly returns whether the form starts in audio-only mode
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().BoolWithFallback(KeyAudioOnly, DefaultAudioOnly)
}

// SetAudioOnly sets whether the form starts in audio-only mode
func (s *Settings) SetAudioOnly(audioOnly bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, audioOnly)
}

// GetFilenameTemplate returns the output filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal completed downloads in
// the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetThumbnailWidth returns the preview width in pixels
func (s *Settings) GetThumbnailWidth() int {
	return clampThumbnailWidth(s.app.Preferences().IntWithFallback(KeyThumbnailWidth, DefaultThumbnailWidth))
}

// SetThumbnailWidth sets the preview width, clamped to the allowed range
func (s *Settings) SetThumbnailWidth(width int) {
	s.app.Preferences().SetInt(KeyThumbnailWidth, clampThumbnailWidth(width))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampThumbnailWidth(width int) int {
	if width < MinThumbnailWidth {
		return MinThumbnailWidth
	}
	if width > MaxThumbnailWidth {
		return MaxThumbnailWidth
	}
	return width
}
