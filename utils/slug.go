package utils

import (
	"regexp"
	"strings"
)

// Vietnamese diacritic clusters mapped to their base Latin letter.
var vietnameseReplacements = map[string]string{
	"a": "áàạảãâấầậẩẫăắằặẳẵ",
	"e": "éèẹẻẽêếềệểễ",
	"i": "íìịỉĩ",
	"o": "óòọỏõôốồộổỗơớờợởỡ",
	"u": "úùụủũưứừựửữ",
	"y": "ýỳỵỷỹ",
	"d": "đ",
	"A": "ÁÀẠẢÃÂẤẦẬẨẪĂẮẰẶẲẴ",
	"E": "ÉÈẸẺẼÊẾỀỆỂỄ",
	"I": "ÍÌỊỈĨ",
	"O": "ÓÒỌỎÕÔỐỒỘỔỖƠỚỜỢỞỠ",
	"U": "ÚÙỤỦŨƯỨỪỰỬỮ",
	"Y": "ÝỲỴỶỸ",
	"D": "Đ",
}

var (
	slugInvalidChars   = regexp.MustCompile(`[^\w\-]+`)
	slugRepeatedHyphen = regexp.MustCompile(`-+`)
)

// Slugify turns a display name into a lowercase, hyphen-delimited, ASCII-only
// identifier. Vietnamese diacritics are transliterated to their base letters.
// The result may be empty; callers must reject empty slugs.
func Slugify(name string) string {
	transliterated := strings.Map(func(r rune) rune {
		for base, cluster := range vietnameseReplacements {
			if strings.ContainsRune(cluster, r) {
				return rune(base[0])
			}
		}
		return r
	}, name)

	slug := strings.ToLower(strings.TrimSpace(transliterated))
	slug = strings.Join(strings.Fields(slug), "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugRepeatedHyphen.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
