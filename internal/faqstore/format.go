package faqstore

import (
	"bytes"
	"strings"

	"backend-faq/internal/models"
)

const (
	bannerLine = "// FAQ data file. Managed by the FAQ file manager; admin edits rewrite this file in full."
	exportName = "faqCategories"
)

// literalEscaper runs in a single pass over the input, so a backslash
// produced by one substitution is never escaped again by another.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quote renders s as a single-quoted literal.
func quote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + literalEscaper.Replace(s) + "'"
}

// Encode renders categories as store text. Equal input always yields
// byte-identical output.
func Encode(categories []models.FAQCategory) []byte {
	var b bytes.Buffer
	b.WriteString(bannerLine)
	b.WriteByte('\n')
	b.WriteString("export const " + exportName + " = ")

	if len(categories) == 0 {
		b.WriteString("[];\n")
		return b.Bytes()
	}

	b.WriteString("[\n")
	for i, cat := range categories {
		b.WriteString("  {\n")
		b.WriteString("    id: " + quote(cat.ID) + ",\n")
		b.WriteString("    title: " + quote(cat.Title) + ",\n")
		b.WriteString("    icon: " + quote(cat.Icon) + ",\n")
		writeEntries(&b, cat.FAQs)
		b.WriteString("  }")
		if i < len(categories)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("];\n")
	return b.Bytes()
}

func writeEntries(b *bytes.Buffer, faqs []models.FAQEntry) {
	if len(faqs) == 0 {
		b.WriteString("    faqs: []\n")
		return
	}
	b.WriteString("    faqs: [\n")
	for i, f := range faqs {
		b.WriteString("      {\n")
		b.WriteString("        id: " + quote(f.ID) + ",\n")
		b.WriteString("        question: " + quote(f.Question) + ",\n")
		b.WriteString("        answer: " + quote(f.Answer) + "\n")
		b.WriteString("      }")
		if i < len(faqs)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("    ]\n")
}
