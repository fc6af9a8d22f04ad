package sheet

import (
	"regexp"
	"strings"

	"github.com/jengzang/tripsheet-backend-go/internal/models"
)

var entryBoundaryRe = regexp.MustCompile(`\}\s*,\s*\{`)

// ParseOptions extracts the first "[{label: value}, ...]" block embedded in
// a title. Returns nil when no block is present, and also when every entry
// inside the block is malformed; callers can rely on a non-nil result being
// non-empty. Only the first block is considered and nesting is not
// supported.
func ParseOptions(text string) []models.Option {
	inner, ok := optionBlock(text)
	if !ok {
		return nil
	}

	var opts []models.Option
	for _, raw := range entryBoundaryRe.Split(inner, -1) {
		cleaned := strings.TrimSpace(raw)
		cleaned = strings.TrimPrefix(cleaned, "{")
		cleaned = strings.TrimSuffix(cleaned, "}")

		// Split on the first colon only; values may contain colons.
		sep := strings.Index(cleaned, ":")
		if sep == -1 {
			continue
		}
		opts = append(opts, models.Option{
			Label: strings.TrimSpace(cleaned[:sep]),
			Value: strings.TrimSpace(cleaned[sep+1:]),
		})
	}

	if len(opts) == 0 {
		return nil
	}
	return opts
}

// optionBlock scans for the first '[' followed (after optional whitespace)
// by '{', terminated by the first '}' whose next non-space character is ']'.
// Returns the content between the brackets. Plain byte scan: the delimiters
// are all ASCII, so multi-byte runes in between pass through untouched.
func optionBlock(text string) (string, bool) {
	for start := 0; start < len(text); start++ {
		if text[start] != '[' {
			continue
		}
		i := start + 1
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) || text[i] != '{' {
			continue
		}
		for j := i; j < len(text); j++ {
			if text[j] != '}' {
				continue
			}
			k := j + 1
			for k < len(text) && isSpace(text[k]) {
				k++
			}
			if k < len(text) && text[k] == ']' {
				return text[start+1 : k], true
			}
		}
	}
	return "", false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
