package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyUsers          = "users"
	KeyRefresh        = "refresh"
	KeyUserDetails    = "user_details"
	KeyAudioFiles     = "audio_files"
	KeyFetchDetails   = "fetch_details"
	KeyEnterUserID    = "enter_user_id"
	KeyEmail          = "email"
	KeyPhone          = "phone"
	KeyBio            = "bio"
	KeyMemberSince    = "member_since"
	KeyTrackCount     = "track_count"
	KeyNoAudioFiles   = "no_audio_files"
	KeyUploadAudio    = "upload_audio"
	KeyUploadTitle    = "upload_title"
	KeyChooseFile     = "choose_file"
	KeyNoFileChosen   = "no_file_chosen"
	KeyUpload         = "upload"
	KeyPlay           = "play"
	KeyStop           = "stop"
	KeyDelete         = "delete"
	KeyDeleteConfirm  = "delete_confirm"
	KeyDeleteQuestion = "delete_question"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyServerURL      = "server_url"
	KeyCacheDirectory = "cache_directory"
	KeyAutoPlay       = "auto_play"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyBrowse         = "browse"
	KeyLoading        = "loading"
	KeySettingsSaved  = "settings_saved"
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Audio Panel",
		KeyUsers:          "Users",
		KeyRefresh:        "Refresh",
		KeyUserDetails:    "User Details",
		KeyAudioFiles:     "Audio Files",
		KeyFetchDetails:   "Fetch Details",
		KeyEnterUserID:    "Enter user ID",
		KeyEmail:          "Email",
		KeyPhone:          "Phone",
		KeyBio:            "Bio",
		KeyMemberSince:    "Member since",
		KeyTrackCount:     "audio files",
		KeyNoAudioFiles:   "No audio files yet",
		KeyUploadAudio:    "Upload Audio",
		KeyUploadTitle:    "Title (optional)",
		KeyChooseFile:     "Choose File",
		KeyNoFileChosen:   "No file chosen",
		KeyUpload:         "Upload",
		KeyPlay:           "Play",
		KeyStop:           "Stop",
		KeyDelete:         "Delete",
		KeyDeleteConfirm:  "Delete Audio File",
		KeyDeleteQuestion: "Are you sure you want to delete this audio file?",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyServerURL:      "Server URL",
		KeyCacheDirectory: "Cache Directory",
		KeyAutoPlay:       "Auto-play uploaded files",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyBrowse:         "Browse",
		KeyLoading:        "Loading...",
		KeySettingsSaved:  "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Аудио Панель",
		KeyUsers:          "Пользователи",
		KeyRefresh:        "Обновить",
		KeyUserDetails:    "Детали пользователя",
		KeyAudioFiles:     "Аудиофайлы",
		KeyFetchDetails:   "Показать детали",
		KeyEnterUserID:    "Введите ID пользователя",
		KeyEmail:          "Эл. почта",
		KeyPhone:          "Телефон",
		KeyBio:            "О себе",
		KeyMemberSince:    "Дата регистрации",
		KeyTrackCount:     "аудиофайлов",
		KeyNoAudioFiles:   "Аудиофайлов пока нет",
		KeyUploadAudio:    "Загрузить аудио",
		KeyUploadTitle:    "Название (необязательно)",
		KeyChooseFile:     "Выбрать файл",
		KeyNoFileChosen:   "Файл не выбран",
		KeyUpload:         "Загрузить",
		KeyPlay:           "Играть",
		KeyStop:           "Стоп",
		KeyDelete:         "Удалить",
		KeyDeleteConfirm:  "Удалить аудиофайл",
		KeyDeleteQuestion: "Вы уверены, что хотите удалить этот аудиофайл?",
		KeySettings:       "Настройки",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeyServerURL:      "Адрес сервера",
		KeyCacheDirectory: "Папка кэша",
		KeyAutoPlay:       "Автовоспроизведение после загрузки",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyBrowse:         "Обзор",
		KeyLoading:        "Загрузка...",
		KeySettingsSaved:  "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Painel de Áudio",
		KeyUsers:          "Usuários",
		KeyRefresh:        "Atualizar",
		KeyUserDetails:    "Detalhes do Usuário",
		KeyAudioFiles:     "Arquivos de Áudio",
		KeyFetchDetails:   "Buscar Detalhes",
		KeyEnterUserID:    "Digite o ID do usuário",
		KeyEmail:          "E-mail",
		KeyPhone:          "Telefone",
		KeyBio:            "Bio",
		KeyMemberSince:    "Membro desde",
		KeyTrackCount:     "arquivos de áudio",
		KeyNoAudioFiles:   "Nenhum arquivo de áudio ainda",
		KeyUploadAudio:    "Enviar Áudio",
		KeyUploadTitle:    "Título (opcional)",
		KeyChooseFile:     "Escolher Arquivo",
		KeyNoFileChosen:   "Nenhum arquivo escolhido",
		KeyUpload:         "Enviar",
		KeyPlay:           "Tocar",
		KeyStop:           "Parar",
		KeyDelete:         "Excluir",
		KeyDeleteConfirm:  "Excluir Arquivo de Áudio",
		KeyDeleteQuestion: "Tem certeza de que deseja excluir este arquivo de áudio?",
		KeySettings:       "Configurações",
		KeyFile:           "Arquivo",
		KeyLanguage:       "Idioma",
		KeyServerURL:      "URL do Servidor",
		KeyCacheDirectory: "Diretório de Cache",
		KeyAutoPlay:       "Reproduzir automaticamente após envio",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeyBrowse:         "Navegar",
		KeyLoading:        "Carregando...",
		KeySettingsSaved:  "Configurações salvas com sucesso!",
	}
}
