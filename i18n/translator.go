package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "want" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "spec_syntax":
			return "スキーム定義の構文が不正です"
		case "part_length":
			return "パート長が不正です"
		case "value_length":
			return "値の桁数がパート長と一致しません"
		case "bad_range":
			return "範囲指定が不正です"
		case "total_length":
			return "合計桁数が上限を超えています"
		case "missing_part":
			return "必須パートが不足しています"
		case "empty_input":
			return "番号が空です"
		case "unknown_scheme":
			return "一致するスキームがありません"
		case "invalid_number":
			return "スキームに対して不正な番号です"
		case "empty_registry":
			return "スキームが登録されていません"
		case "unresolved_scheme":
			return "スキームを解決できません"
		}
	default: // "en"
		switch code {
		case "spec_syntax":
			return "bad scheme specification"
		case "part_length":
			return "bad part length"
		case "value_length":
			return "value length does not match part length"
		case "bad_range":
			return "bad value range"
		case "total_length":
			return "total length exceeds the numbering space"
		case "missing_part":
			return "required part missing"
		case "empty_input":
			return "empty number"
		case "unknown_scheme":
			return "no matching scheme"
		case "invalid_number":
			return "number not valid in scheme"
		case "empty_registry":
			return "no schemes registered"
		case "unresolved_scheme":
			return "scheme cannot be resolved"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
