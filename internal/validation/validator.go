package validation

import (
	"strings"
)

// bannedWords is the fixed moderation list applied to comment content.
// Matching is case-insensitive and substring-based, so a banned word
// embedded inside a longer word still triggers. Accented and unaccented
// variants are listed separately.
var bannedWords = []string{
	"idiota",
	"imbécil",
	"estúpido",
	"tonto",
	"mierda",
	"maldito",
	"cabron",
	"pendejo",
	"jodido",
	"coño",
	"chingado",
	"puto",
	"zorra",
	"tarado",
	"baboso",
	"culero",
	"marica",
	"huevon",
	"pelotudo",
	"gilipollas",
	"pajero",
	"naco",
	"puta",
	"cabrón",
}

// IsProhibited reports whether text contains any banned word.
func IsProhibited(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range bannedWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
