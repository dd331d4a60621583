package valueobjects

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug: lower-case, runs of anything other than
// letters and digits collapsed to a single hyphen, no leading or trailing
// hyphen. An input with no usable characters yields "board".
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return "board"
	}
	return b.String()
}

// UniqueSlug appends -2, -3, ... to base until taken reports false.
func UniqueSlug(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !taken(candidate) {
			return candidate
		}
	}
}
