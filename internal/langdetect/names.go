package langdetect

import "fmt"

// displayNames maps ISO 639-1 codes to human-readable names for the common
// languages the service reports. Codes outside the table are rendered as
// "Unknown (<code>)" rather than rejected.
var displayNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"hi": "Hindi",
	"th": "Thai",
	"vi": "Vietnamese",
	"nl": "Dutch",
	"sv": "Swedish",
	"da": "Danish",
	"no": "Norwegian",
	"fi": "Finnish",
	"pl": "Polish",
	"cs": "Czech",
	"hu": "Hungarian",
	"ro": "Romanian",
	"bg": "Bulgarian",
	"hr": "Croatian",
	"sk": "Slovak",
	"sl": "Slovenian",
	"et": "Estonian",
	"lv": "Latvian",
	"lt": "Lithuanian",
	"mt": "Maltese",
	"ga": "Irish",
	"cy": "Welsh",
}

func displayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%s)", code)
}
