package text

import "strings"

// LanguageNames maps ISO 639-1 language codes to the names used in prompts and on slides.
var LanguageNames = map[string]string{
	"en": "English",
	"zh": "Chinese (Simplified)",
	"zt": "Chinese (Traditional)",
	"ko": "Korean",
	"ja": "Japanese",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"id": "Indonesian",
	"vi": "Vietnamese",
	"tl": "Tagalog",
	"hi": "Hindi",
	"ar": "Arabic",
	"pt": "Portuguese",
	"ru": "Russian",
}

// SupportedTargetLanguages lists the languages offered for bilingual song slides.
var SupportedTargetLanguages = []string{
	"Chinese (Simplified)",
	"Chinese (Traditional)",
	"Korean",
	"Japanese",
	"Spanish",
	"Indonesian",
	"Vietnamese",
}

// GetLanguageName returns the human-readable name for a language code.
// If the code is not found, it returns the input unchanged so names pass through.
func GetLanguageName(code string) string {
	if name, ok := LanguageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// GetLanguageCode returns the ISO code for a language name or code.
// Names match case-insensitively; a bare "Chinese" resolves to simplified.
func GetLanguageCode(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := LanguageNames[key]; ok {
		return key, true
	}
	if key == "chinese" {
		return "zh", true
	}
	for code, n := range LanguageNames {
		if strings.ToLower(n) == key {
			return code, true
		}
	}
	return "", false
}

// IsValidTargetLanguage checks if a language name is offered as a target.
func IsValidTargetLanguage(name string) bool {
	for _, l := range SupportedTargetLanguages {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}
