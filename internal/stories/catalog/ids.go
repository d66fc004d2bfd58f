package catalog

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	fallbackSlug = "cfg"
	maxSlugLen   = 40
	suffixMin    = 1000
	suffixMax    = 9999
)

// ValidateURI reports whether uri starts with one of AllowedSchemes.
func ValidateURI(uri string) bool {
	for _, prefix := range AllowedSchemes {
		if strings.HasPrefix(uri, prefix) {
			return true
		}
	}
	return false
}

// Slugify lowercases name and keeps only [a-z0-9_-], trimming separators
// from both ends. An empty result becomes "cfg". The slug is capped at
// maxSlugLen so callback payloads carrying the id stay within 64 bytes.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	slug = strings.Trim(slug, "-_")
	if slug == "" {
		return fallbackSlug
	}
	return slug
}

func randomSuffix() int {
	return suffixMin + rand.IntN(suffixMax-suffixMin+1)
}

// generateID appends a random 4-digit suffix to the slug of name, re-rolling
// only the suffix until taken reports the candidate as free.
func generateID(name string, suffix func() int, taken func(id string) bool) string {
	base := Slugify(name)
	for {
		candidate := fmt.Sprintf("%s_%d", base, suffix())
		if !taken(candidate) {
			return candidate
		}
	}
}
