package domain

// Language is one of the seven supported UI language codes.
type Language string

const (
	LangEnglish Language = "en"
	LangTurkish Language = "tr"
	LangSpanish Language = "es"
	LangFrench  Language = "fr"
	LangGerman  Language = "de"
	LangItalian Language = "it"
	LangChinese Language = "zh"
)

// ParseLanguage maps a code to a supported language. Unknown codes are
// not an error; they fall back to English, the default pack.
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case LangEnglish, LangTurkish, LangSpanish, LangFrench, LangGerman, LangItalian, LangChinese:
		return Language(code), true
	}
	return LangEnglish, false
}

var languageNames = map[Language]string{
	LangEnglish: "English",
	LangTurkish: "Turkish",
	LangSpanish: "Spanish",
	LangFrench:  "French",
	LangGerman:  "German",
	LangItalian: "Italian",
	LangChinese: "Chinese",
}

func (l Language) Name() string {
	if n, ok := languageNames[l]; ok {
		return n
	}
	return string(l)
}

var languageFlags = map[Language]string{
	LangEnglish: "\U0001F1FA\U0001F1F8",
	LangTurkish: "\U0001F1F9\U0001F1F7",
	LangSpanish: "\U0001F1EA\U0001F1F8",
	LangFrench:  "\U0001F1EB\U0001F1F7",
	LangGerman:  "\U0001F1E9\U0001F1EA",
	LangItalian: "\U0001F1EE\U0001F1F9",
	LangChinese: "\U0001F1E8\U0001F1F3",
}

// Flag returns the country flag shown next to the participant. Unknown
// languages get the globe.
func (l Language) Flag() string {
	if f, ok := languageFlags[l]; ok {
		return f
	}
	return "\U0001F30D"
}

// MessagePack holds the localized UI strings for one language.
type MessagePack struct {
	Welcome          string
	GestureDetected  string
	UserNearby       string
	MuteEnabled      string
	RecordingStarted string
	UserJoined       string
	UserLeft         string
}

var messagePacks = map[Language]MessagePack{
	LangEnglish: {
		Welcome:          "Welcome to VR space",
		GestureDetected:  "Gesture detected",
		UserNearby:       "User nearby",
		MuteEnabled:      "Mute enabled",
		RecordingStarted: "Recording started",
		UserJoined:       "joined the meeting",
		UserLeft:         "left the meeting",
	},
	LangTurkish: {
		Welcome:          "VR alanına hoş geldiniz",
		GestureDetected:  "Hareket algılandı",
		UserNearby:       "Yakında kullanıcı",
		MuteEnabled:      "Sessize alma etkinleştirildi",
		RecordingStarted: "Kayıt başlatıldı",
		UserJoined:       "toplantıya katıldı",
		UserLeft:         "toplantıdan ayrıldı",
	},
	LangSpanish: {
		Welcome:          "Bienvenido al espacio VR",
		GestureDetected:  "Gesto detectado",
		UserNearby:       "Usuario cercano",
		MuteEnabled:      "Silencio activado",
		RecordingStarted: "Grabación iniciada",
		UserJoined:       "se unió a la reunión",
		UserLeft:         "abandonó la reunión",
	},
	LangFrench: {
		Welcome:          "Bienvenue dans l'espace VR",
		GestureDetected:  "Geste détecté",
		UserNearby:       "Utilisateur à proximité",
		MuteEnabled:      "Muet activé",
		RecordingStarted: "Enregistrement démarré",
		UserJoined:       "a rejoint la réunion",
		UserLeft:         "a quitté la réunion",
	},
	LangGerman: {
		Welcome:          "Willkommen im VR-Raum",
		GestureDetected:  "Geste erkannt",
		UserNearby:       "Benutzer in der Nähe",
		MuteEnabled:      "Stumm aktiviert",
		RecordingStarted: "Aufnahme gestartet",
		UserJoined:       "ist dem Meeting beigetreten",
		UserLeft:         "hat das Meeting verlassen",
	},
	LangItalian: {
		Welcome:          "Benvenuto nello spazio VR",
		GestureDetected:  "Gesto rilevato",
		UserNearby:       "Utente vicino",
		MuteEnabled:      "Muto attivato",
		RecordingStarted: "Registrazione iniziata",
		UserJoined:       "si è unito alla riunione",
		UserLeft:         "ha lasciato la riunione",
	},
	LangChinese: {
		Welcome:          "欢迎进入VR空间",
		GestureDetected:  "检测到手势",
		UserNearby:       "附近有用户",
		MuteEnabled:      "静音已启用",
		RecordingStarted: "录制已开始",
		UserJoined:       "加入了会议",
		UserLeft:         "离开了会议",
	},
}

// PackFor returns the message pack for l, or the English pack (and
// ok=false) when l has no pack of its own.
func PackFor(l Language) (MessagePack, bool) {
	if p, ok := messagePacks[l]; ok {
		return p, true
	}
	return messagePacks[LangEnglish], false
}

var gestureReactions = map[string]map[Language]string{
	"wave": {
		LangEnglish: "waves hello", LangTurkish: "el sallar", LangSpanish: "saluda",
		LangFrench: "salue", LangGerman: "winkt", LangItalian: "saluta", LangChinese: "挥手问好",
	},
	"thumbs_up": {
		LangEnglish: "gives thumbs up", LangTurkish: "beğenir", LangSpanish: "da me gusta",
		LangFrench: "fait un pouce", LangGerman: "zeigt Daumen hoch", LangItalian: "fa pollice su", LangChinese: "点赞",
	},
	"clap": {
		LangEnglish: "claps", LangTurkish: "alkışlar", LangSpanish: "aplaude",
		LangFrench: "applaudit", LangGerman: "klatscht", LangItalian: "applaude", LangChinese: "鼓掌",
	},
	"point": {
		LangEnglish: "points", LangTurkish: "işaret eder", LangSpanish: "señala",
		LangFrench: "pointe", LangGerman: "zeigt", LangItalian: "indica", LangChinese: "指向",
	},
	"peace": {
		LangEnglish: "shows peace sign", LangTurkish: "barış işareti yapar", LangSpanish: "muestra señal de paz",
		LangFrench: "fait le signe de la paix", LangGerman: "zeigt Peace-Zeichen", LangItalian: "fa il segno della pace", LangChinese: "做和平手势",
	},
}

// Reaction localizes a gesture kind. Unknown kinds or languages fall
// back to the literal kind.
func Reaction(kind string, l Language) string {
	if byLang, ok := gestureReactions[kind]; ok {
		if r, ok := byLang[l]; ok {
			return r
		}
		if r, ok := byLang[LangEnglish]; ok {
			return r
		}
	}
	return kind
}
