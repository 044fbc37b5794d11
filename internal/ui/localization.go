package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle              = "app_title"
	KeyYouTubeURL            = "youtube_url"
	KeyEnterURL              = "enter_url"
	KeyCheckTranscripts      = "check_transcripts"
	KeyAvailableTranscripts  = "available_transcripts"
	KeyAvailableTranslations = "available_translations"
	KeyOutputFormat          = "output_format"
	KeyFormatHelp            = "format_help"
	KeyObtainTranscript      = "obtain_transcript"
	KeyChecking              = "checking"
	KeyReadyToConvert        = "ready_to_convert"
	KeyObtaining             = "obtaining"
	KeySavedAs               = "saved_as"
	KeyErrorOccurred         = "error_occurred"
	KeyError                 = "error"
	KeyErrorMessage          = "error_message"
	KeySuccess               = "success"
	KeyTranscriptSavedAs     = "transcript_saved_as"
	KeyPleaseEnterURL        = "please_enter_url"
	KeyRecentTranscripts     = "recent_transcripts"
	KeyReveal                = "reveal"
	KeyOpen                  = "open"
	KeyCopyPath              = "copy_path"
	KeyPathCopied            = "path_copied"
	KeyErrorOpeningFile      = "error_opening_file"
	KeySettings              = "settings"
	KeyFile                  = "file"
	KeyLanguage              = "language"
	KeyTranscriptSettings    = "transcript_settings"
	KeyInterfaceSettings     = "interface_settings"
	KeyOutputDirectory       = "output_directory"
	KeyWorkingDirectory      = "working_directory"
	KeyDefaultFormat         = "default_format"
	KeyAutoReveal            = "auto_reveal"
	KeySave                  = "save"
	KeyCancel                = "cancel"
	KeyBrowse                = "browse"
	KeySettingsSaved         = "settings_saved"
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
		// Use system locale - simplified to English for now
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

	// Final fallback - return key itself
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

// formatHelpEN describes each output format; shown from the help button next to the format select
const formatHelpEN = `Output Format Options:

JSON (.json): Machine-readable format with precise decimal timing (e.g., "start": 0.32).
Ideal for data processing and APIs.

SRT (.srt): Standard subtitle format using timestamp ranges (00:00:00,320).
Widely supported by video players.

WebVTT (.vtt): Modern HTML5 caption format similar to SRT but uses periods
for milliseconds. Includes WEBVTT header.

Pretty Print (.txt): Human-readable data structure format with proper
indentation. Useful for debugging.

Text (.txt): Simple plain text format with just the transcript content.`

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:              "YouTube Transcript Extractor",
		KeyYouTubeURL:            "YouTube URL:",
		KeyEnterURL:              "Paste YouTube URL here",
		KeyCheckTranscripts:      "Check Available Transcripts",
		KeyAvailableTranscripts:  "Available Transcripts:",
		KeyAvailableTranslations: "Available Translations (not yet implemented, will come in a future release):",
		KeyOutputFormat:          "Output Format:",
		KeyFormatHelp:            formatHelpEN,
		KeyObtainTranscript:      "Obtain Transcript",
		KeyChecking:              "Checking available transcripts...",
		KeyReadyToConvert:        "Ready to convert",
		KeyObtaining:             "Obtaining transcript...",
		KeySavedAs:               "Saved as: %s",
		KeyErrorOccurred:         "Error occurred",
		KeyError:                 "Error",
		KeyErrorMessage:          "An error occurred:\n%s",
		KeySuccess:               "Success",
		KeyTranscriptSavedAs:     "Transcript saved as:\n%s",
		KeyPleaseEnterURL:        "Please enter a YouTube URL",
		KeyRecentTranscripts:     "Recent transcripts",
		KeyReveal:                "Reveal",
		KeyOpen:                  "Open",
		KeyCopyPath:              "Copy path",
		KeyPathCopied:            "Path copied to clipboard",
		KeyErrorOpeningFile:      "Error opening file",
		KeySettings:              "Settings",
		KeyFile:                  "File",
		KeyLanguage:              "Language",
		KeyTranscriptSettings:    "Transcript Settings",
		KeyInterfaceSettings:     "Interface Settings",
		KeyOutputDirectory:       "Output Directory",
		KeyWorkingDirectory:      "Current working directory",
		KeyDefaultFormat:         "Default Output Format",
		KeyAutoReveal:            "Reveal saved transcripts in the file manager",
		KeySave:                  "Save",
		KeyCancel:                "Cancel",
		KeyBrowse:                "Browse",
		KeySettingsSaved:         "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:              "Извлечение субтитров YouTube",
		KeyYouTubeURL:            "URL YouTube:",
		KeyEnterURL:              "Вставьте URL YouTube",
		KeyCheckTranscripts:      "Проверить доступные субтитры",
		KeyAvailableTranscripts:  "Доступные субтитры:",
		KeyAvailableTranslations: "Доступные переводы (пока не реализовано, появится в следующих версиях):",
		KeyOutputFormat:          "Формат вывода:",
		KeyObtainTranscript:      "Получить субтитры",
		KeyChecking:              "Проверка доступных субтитров...",
		KeyReadyToConvert:        "Готово к преобразованию",
		KeyObtaining:             "Получение субтитров...",
		KeySavedAs:               "Сохранено как: %s",
		KeyErrorOccurred:         "Произошла ошибка",
		KeyError:                 "Ошибка",
		KeyErrorMessage:          "Произошла ошибка:\n%s",
		KeySuccess:               "Успех",
		KeyTranscriptSavedAs:     "Субтитры сохранены как:\n%s",
		KeyPleaseEnterURL:        "Пожалуйста, введите URL YouTube",
		KeyRecentTranscripts:     "Недавние субтитры",
		KeyReveal:                "Показать",
		KeyOpen:                  "Открыть",
		KeyCopyPath:              "Копировать путь",
		KeyPathCopied:            "Путь скопирован в буфер обмена",
		KeyErrorOpeningFile:      "Ошибка открытия файла",
		KeySettings:              "Настройки",
		KeyFile:                  "Файл",
		KeyLanguage:              "Язык",
		KeyTranscriptSettings:    "Настройки субтитров",
		KeyInterfaceSettings:     "Настройки интерфейса",
		KeyOutputDirectory:       "Папка сохранения",
		KeyWorkingDirectory:      "Текущая рабочая папка",
		KeyDefaultFormat:         "Формат по умолчанию",
		KeyAutoReveal:            "Показывать сохранённые файлы в файловом менеджере",
		KeySave:                  "Сохранить",
		KeyCancel:                "Отмена",
		KeyBrowse:                "Обзор",
		KeySettingsSaved:         "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:              "Extrator de Transcrições do YouTube",
		KeyYouTubeURL:            "URL do YouTube:",
		KeyEnterURL:              "Cole a URL do YouTube aqui",
		KeyCheckTranscripts:      "Verificar Transcrições Disponíveis",
		KeyAvailableTranscripts:  "Transcrições Disponíveis:",
		KeyAvailableTranslations: "Traduções Disponíveis (ainda não implementado, virá em uma versão futura):",
		KeyOutputFormat:          "Formato de Saída:",
		KeyObtainTranscript:      "Obter Transcrição",
		KeyChecking:              "Verificando transcrições disponíveis...",
		KeyReadyToConvert:        "Pronto para converter",
		KeyObtaining:             "Obtendo transcrição...",
		KeySavedAs:               "Salvo como: %s",
		KeyErrorOccurred:         "Ocorreu um erro",
		KeyError:                 "Erro",
		KeyErrorMessage:          "Ocorreu um erro:\n%s",
		KeySuccess:               "Sucesso",
		KeyTranscriptSavedAs:     "Transcrição salva como:\n%s",
		KeyPleaseEnterURL:        "Por favor, digite uma URL do YouTube",
		KeyRecentTranscripts:     "Transcrições recentes",
		KeyReveal:                "Mostrar",
		KeyOpen:                  "Abrir",
		KeyCopyPath:              "Copiar caminho",
		KeyPathCopied:            "Caminho copiado",
		KeyErrorOpeningFile:      "Erro ao abrir arquivo",
		KeySettings:              "Configurações",
		KeyFile:                  "Arquivo",
		KeyLanguage:              "Idioma",
		KeyTranscriptSettings:    "Configurações de Transcrição",
		KeyInterfaceSettings:     "Configurações de Interface",
		KeyOutputDirectory:       "Diretório de Saída",
		KeyWorkingDirectory:      "Diretório de trabalho atual",
		KeyDefaultFormat:         "Formato de Saída Padrão",
		KeyAutoReveal:            "Mostrar transcrições salvas no gerenciador de arquivos",
		KeySave:                  "Salvar",
		KeyCancel:                "Cancelar",
		KeyBrowse:                "Navegar",
		KeySettingsSaved:         "Configurações salvas com sucesso!",
	}
}
