package slug

import (
	"fmt"
	"strings"
	"time"
)

const maxLength = 100

// Make builds a URL-safe, underscore-separated slug from a product title and
// its model/variant label. Used for statically defined products and sitemap
// entries; live Shopify products keep the merchant's own handle.
func Make(title, model string) string {
	return build(title+" "+model, '_')
}

// BrandID is the hyphen-separated variant used when deriving a brand id from
// its display name. Same normalization, different separator.
func BrandID(name string) string {
	return build(name, '-')
}

func build(input string, sep rune) string {
	lowered := strings.ToLower(input)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '-':
			// kept for separator collapsing below; everything else is
			// deleted outright, not replaced
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())

	var s strings.Builder
	s.Grow(len(out))
	lastSep := true // suppress a leading separator
	for _, r := range out {
		if r == ' ' || r == '\t' || r == '\n' || r == '-' || r == sep {
			if !lastSep {
				s.WriteRune(sep)
				lastSep = true
			}
			continue
		}
		s.WriteRune(r)
		lastSep = false
	}

	result := strings.Trim(s.String(), string(sep))

	if result == "" {
		result = fmt.Sprintf("product%c%d", sep, time.Now().UnixMilli())
	}

	if len(result) > maxLength {
		result = result[:maxLength]
		// trim back to the last separator so the slug never ends mid-token
		if idx := strings.LastIndexByte(result, byte(sep)); idx > 0 {
			result = result[:idx]
		}
		result = strings.Trim(result, string(sep))
	}

	return result
}
