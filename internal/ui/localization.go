package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyVideoURL             = "video_url"
	KeyEnterURL             = "enter_url"
	KeyGetInfo              = "get_info"
	KeyQuality              = "quality"
	KeyFileSize             = "file_size"
	KeyAudioOnly            = "audio_only"
	KeySaveLocation         = "save_location"
	KeyBrowse               = "browse"
	KeyDownload             = "download"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeyDownloadDirectory    = "download_directory"
	KeyFilenameTemplate     = "filename_template"
	KeyThumbnailWidth       = "thumbnail_width"
	KeyAudioOnlyDefault     = "audio_only_default"
	KeyAutoReveal           = "auto_reveal"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeySettingsSaved        = "settings_saved"
	KeyStatusIdle           = "status_idle"
	KeyStatusFetching       = "status_fetching"
	KeyStatusReady          = "status_ready"
	KeyStatusPlaylist       = "status_playlist"
	KeyStatusStarting       = "status_starting"
	KeyStatusDownloading    = "status_downloading"
	KeyStatusProcessing     = "status_processing"
	KeyStatusCompleted      = "status_completed"
	KeyStatusFailed         = "status_failed"
	KeyStatusCanceled       = "status_canceled"
	KeySuccess              = "success"
	KeyDownloadCompleted    = "download_completed"
	KeyThumbnailUnavailable = "thumbnail_unavailable"
	KeyErrorOpeningFile     = "error_opening_file"
	KeyOpenFile             = "open_file"
	KeyShowInFolder         = "show_in_folder"
	KeyClose                = "close"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "YT Picker",
		KeyVideoURL:             "Video URL:",
		KeyEnterURL:             "Paste a video or playlist URL",
		KeyGetInfo:              "Get Info",
		KeyQuality:              "Quality:",
		KeyFileSize:             "Size: %s",
		KeyAudioOnly:            "Audio Only",
		KeySaveLocation:         "Save to:",
		KeyBrowse:               "Browse",
		KeyDownload:             "Download",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeyDownloadDirectory:    "Download Directory",
		KeyFilenameTemplate:     "Filename Template",
		KeyThumbnailWidth:       "Thumbnail Width",
		KeyAudioOnlyDefault:     "Start in audio-only mode",
		KeyAutoReveal:           "Show file in folder when done",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeySettingsSaved:        "Settings saved",
		KeyStatusIdle:           "Paste a URL and press Get Info",
		KeyStatusFetching:       "Fetching video info...",
		KeyStatusReady:          "Ready",
		KeyStatusPlaylist:       "Playlist \"%s\" (%d videos): using the first video",
		KeyStatusStarting:       "Starting download...",
		KeyStatusDownloading:    "Downloading: %.1f%% · Size: %s · Speed: %s",
		KeyStatusProcessing:     "Download complete! Processing file...",
		KeyStatusCompleted:      "Download complete!",
		KeyStatusFailed:         "Failed",
		KeyStatusCanceled:       "Canceled",
		KeySuccess:              "Success",
		KeyDownloadCompleted:    "Download completed successfully!",
		KeyThumbnailUnavailable: "Thumbnail unavailable",
		KeyErrorOpeningFile:     "Error opening file",
		KeyOpenFile:             "Open",
		KeyShowInFolder:         "Show in folder",
		KeyClose:                "Close",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "YT Picker",
		KeyVideoURL:             "Ссылка:",
		KeyEnterURL:             "Вставьте ссылку на видео или плейлист",
		KeyGetInfo:              "Получить",
		KeyQuality:              "Качество:",
		KeyFileSize:             "Размер: %s",
		KeyAudioOnly:            "Только аудио",
		KeySaveLocation:         "Сохранить в:",
		KeyBrowse:               "Обзор",
		KeyDownload:             "Скачать",
		KeySettings:             "Настройки",
		KeyFile:                 "Файл",
		KeyLanguage:             "Язык",
		KeyDownloadDirectory:    "Папка загрузок",
		KeyFilenameTemplate:     "Шаблон имени файла",
		KeyThumbnailWidth:       "Ширина превью",
		KeyAudioOnlyDefault:     "Запускать в режиме аудио",
		KeyAutoReveal:           "Показывать файл в папке после загрузки",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeySettingsSaved:        "Настройки сохранены",
		KeyStatusIdle:           "Вставьте ссылку и нажмите «Получить»",
		KeyStatusFetching:       "Получение информации о видео...",
		KeyStatusReady:          "Готово",
		KeyStatusPlaylist:       "Плейлист «%s» (%d видео): используется первое видео",
		KeyStatusStarting:       "Начинаем загрузку...",
		KeyStatusDownloading:    "Загрузка: %.1f%% · Размер: %s · Скорость: %s",
		KeyStatusProcessing:     "Загрузка завершена! Обработка файла...",
		KeyStatusCompleted:      "Загрузка завершена!",
		KeyStatusFailed:         "Ошибка",
		KeyStatusCanceled:       "Отменено",
		KeySuccess:              "Успех",
		KeyDownloadCompleted:    "Загрузка успешно завершена!",
		KeyThumbnailUnavailable: "Превью недоступно",
		KeyErrorOpeningFile:     "Ошибка открытия файла",
		KeyOpenFile:             "Открыть",
		KeyShowInFolder:         "Показать в папке",
		KeyClose:                "Закрыть",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "YT Picker",
		KeyVideoURL:             "URL do vídeo:",
		KeyEnterURL:             "Cole a URL de um vídeo ou playlist",
		KeyGetInfo:              "Obter Info",
		KeyQuality:              "Qualidade:",
		KeyFileSize:             "Tamanho: %s",
		KeyAudioOnly:            "Somente Áudio",
		KeySaveLocation:         "Salvar em:",
		KeyBrowse:               "Procurar",
		KeyDownload:             "Baixar",
		KeySettings:             "Configurações",
		KeyFile:                 "Arquivo",
		KeyLanguage:             "Idioma",
		KeyDownloadDirectory:    "Pasta de Downloads",
		KeyFilenameTemplate:     "Modelo de Nome",
		KeyThumbnailWidth:       "Largura da Miniatura",
		KeyAudioOnlyDefault:     "Iniciar no modo somente áudio",
		KeyAutoReveal:           "Mostrar arquivo na pasta ao concluir",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeySettingsSaved:        "Configurações salvas",
		KeyStatusIdle:           "Cole uma URL e clique em Obter Info",
		KeyStatusFetching:       "Obtendo informações do vídeo...",
		KeyStatusReady:          "Pronto",
		KeyStatusPlaylist:       "Playlist \"%s\" (%d vídeos): usando o primeiro vídeo",
		KeyStatusStarting:       "Iniciando download...",
		KeyStatusDownloading:    "Baixando: %.1f%% · Tamanho: %s · Velocidade: %s",
		KeyStatusProcessing:     "Download concluído! Processando arquivo...",
		KeyStatusCompleted:      "Download concluído!",
		KeyStatusFailed:         "Falhou",
		KeyStatusCanceled:       "Cancelado",
		KeySuccess:              "Sucesso",
		KeyDownloadCompleted:    "Download concluído com sucesso!",
		KeyThumbnailUnavailable: "Miniatura indisponível",
		KeyErrorOpeningFile:     "Erro ao abrir arquivo",
		KeyOpenFile:             "Abrir",
		KeyShowInFolder:         "Mostrar na pasta",
		KeyClose:                "Fechar",
	}
}
