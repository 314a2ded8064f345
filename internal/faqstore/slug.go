package faqstore

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxSlugLen = 50

// slugSpace is ASCII whitespace plus Unicode space separators, the line and
// paragraph separators and the byte order mark. RE2's \s is ASCII only.
const slugSpace = `\t\n\v\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9` + slugSpace + `-]`)
	slugEdges      = regexp.MustCompile(`^[` + slugSpace + `]+|[` + slugSpace + `]+$`)
	slugSpaces     = regexp.MustCompile(`[` + slugSpace + `]+`)
)

// Slugify derives an entry id from question text: lower-cased, reduced to
// [a-z0-9 -] plus whitespace, trimmed, whitespace runs joined with '-', cut
// to 50 chars.
func Slugify(question string) string {
	s := strings.ToLower(question)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugEdges.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return s
}

// resolveID picks the id for a new entry. Questions with nothing sluggable
// (e.g. only non-Latin text) get a random id instead of an empty one.
func resolveID(in string, question string) string {
	if in != "" {
		return in
	}
	if s := Slugify(question); s != "" {
		return s
	}
	return "faq-" + uuid.NewString()[:8]
}
