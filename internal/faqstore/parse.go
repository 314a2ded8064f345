package faqstore

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"backend-faq/internal/models"
)

// object is a parsed {...} literal; duplicate keys resolve to the last value.
type object struct {
	vals map[string]any
	line int
	col  int
}

type parser struct {
	src  string
	pos  int
	line int
	col  int
}

// Decode parses store text produced by Encode, or a hand edit of it.
// Comments and trailing separators are accepted; anything that is not a
// string, array or object literal is rejected.
func Decode(src []byte) ([]models.FAQCategory, error) {
	p := &parser{src: string(src), line: 1, col: 1}
	root, err := p.document()
	if err != nil {
		return nil, err
	}
	return toCategories(root)
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Col: p.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else if utf8.RuneStart(c) {
		p.col++
	}
	return c
}

func (p *parser) skipSpace() error {
	for !p.eof() {
		c := p.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.advance()
		case strings.HasPrefix(p.src[p.pos:], "//"):
			for !p.eof() && p.peek() != '\n' {
				p.advance()
			}
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			line, col := p.line, p.col
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				return &SyntaxError{Line: line, Col: col, Msg: "unterminated block comment"}
			}
			for n := end + 4; n > 0; n-- {
				p.advance()
			}
		case strings.HasPrefix(p.src[p.pos:], "\xef\xbb\xbf"):
			p.pos += 3
		default:
			return nil
		}
	}
	return nil
}

func (p *parser) expect(c byte) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if p.peek() != c {
		return p.errorf("expected %q, found %s", c, p.describe())
	}
	p.advance()
	return nil
}

func (p *parser) describe() string {
	if p.eof() {
		return "end of file"
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return strconv.QuoteRune(r)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (p *parser) ident() (string, error) {
	if err := p.skipSpace(); err != nil {
		return "", err
	}
	if !isIdentStart(p.peek()) {
		return "", p.errorf("expected identifier, found %s", p.describe())
	}
	start := p.pos
	for !p.eof() && isIdentPart(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos], nil
}

func (p *parser) keyword(words ...string) (string, error) {
	line, col := p.line, p.col
	w, err := p.ident()
	if err != nil {
		return "", err
	}
	for _, want := range words {
		if w == want {
			return w, nil
		}
	}
	return "", &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf("expected %s, found %q", strings.Join(words, " or "), w)}
}

// document := "export" ("const"|"let"|"var") ident "=" value [";"] ["export" "default" ident [";"]]
func (p *parser) document() (any, error) {
	if _, err := p.keyword("export"); err != nil {
		return nil, err
	}
	if _, err := p.keyword("const", "let", "var"); err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expect('='); err != nil {
		return nil, err
	}
	root, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.optional(';'); err != nil {
		return nil, err
	}
	if p.eof() {
		return root, nil
	}

	if _, err := p.keyword("export"); err != nil {
		return nil, err
	}
	if _, err := p.keyword("default"); err != nil {
		return nil, err
	}
	line, col := p.line, p.col
	alias, err := p.ident()
	if err != nil {
		return nil, err
	}
	if alias != name {
		return nil, &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf("default export %q does not match %q", alias, name)}
	}
	if err := p.optional(';'); err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %s after declaration", p.describe())
	}
	return root, nil
}

func (p *parser) optional(c byte) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if p.peek() == c {
		p.advance()
		return p.skipSpace()
	}
	return nil
}

func (p *parser) value() (any, error) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	switch c := p.peek(); c {
	case '\'', '"':
		return p.str()
	case '[':
		return p.array()
	case '{':
		return p.object()
	default:
		return nil, p.errorf("unexpected %s, expected string, array or object", p.describe())
	}
}

func (p *parser) array() ([]any, error) {
	p.advance() // [
	items := []any{}
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.peek() == ']' {
			p.advance()
			return items, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		switch p.peek() {
		case ',':
			p.advance()
		case ']':
			p.advance()
			return items, nil
		default:
			return nil, p.errorf("expected ',' or ']', found %s", p.describe())
		}
	}
}

func (p *parser) object() (*object, error) {
	obj := &object{vals: map[string]any{}, line: p.line, col: p.col}
	p.advance() // {
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.peek() == '}' {
			p.advance()
			return obj, nil
		}

		var key string
		var err error
		if c := p.peek(); c == '\'' || c == '"' {
			key, err = p.str()
		} else {
			key, err = p.ident()
		}
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj.vals[key] = v

		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		switch p.peek() {
		case ',':
			p.advance()
		case '}':
			p.advance()
			return obj, nil
		default:
			return nil, p.errorf("expected ',' or '}', found %s", p.describe())
		}
	}
}

func (p *parser) str() (string, error) {
	line, col := p.line, p.col
	q := p.advance()
	var b strings.Builder
	for {
		if p.eof() {
			return "", &SyntaxError{Line: line, Col: col, Msg: "unterminated string"}
		}
		c := p.peek()
		switch {
		case c == q:
			p.advance()
			return b.String(), nil
		case c == '\n' || c == '\r':
			return "", &SyntaxError{Line: line, Col: col, Msg: "unterminated string"}
		case c == '\\':
			p.advance()
			if err := p.escape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(p.advance())
		}
	}
}

func (p *parser) escape(b *strings.Builder) error {
	if p.eof() {
		return p.errorf("unterminated escape")
	}
	if p.peek() >= utf8.RuneSelf {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		for ; size > 0; size-- {
			p.advance()
		}
		b.WriteRune(r)
		return nil
	}
	c := p.advance()
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		if c := p.peek(); c >= '0' && c <= '9' {
			return p.errorf("octal escapes are not supported")
		}
		b.WriteByte(0)
	case 'x':
		r, err := p.hex(2)
		if err != nil {
			return err
		}
		b.WriteRune(r)
	case 'u':
		r, err := p.unicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
	case '\r':
		// line continuation
		if p.peek() == '\n' {
			p.advance()
		}
	case '\n':
		// line continuation
	default:
		// \\ \' \" and any other escaped character stand for themselves
		b.WriteByte(c)
	}
	return nil
}

func (p *parser) hex(n int) (rune, error) {
	if p.pos+n > len(p.src) {
		return 0, p.errorf("truncated hex escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid hex escape %q", p.src[p.pos:p.pos+n])
	}
	for i := 0; i < n; i++ {
		p.advance()
	}
	return rune(v), nil
}

func (p *parser) unicodeEscape() (rune, error) {
	if p.peek() == '{' {
		p.advance()
		end := strings.IndexByte(p.src[p.pos:], '}')
		if end < 1 || end > 6 {
			return 0, p.errorf("invalid unicode escape")
		}
		r, err := p.hex(end)
		if err != nil {
			return 0, err
		}
		p.advance() // }
		if r > utf8.MaxRune {
			return 0, p.errorf("unicode escape out of range")
		}
		return r, nil
	}
	r, err := p.hex(4)
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(r) && strings.HasPrefix(p.src[p.pos:], `\u`) {
		save := *p
		p.advance()
		p.advance()
		lo, err := p.hex(4)
		if err == nil {
			if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
				return pair, nil
			}
		}
		*p = save
	}
	return r, nil
}

func toCategories(root any) ([]models.FAQCategory, error) {
	list, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array", exportName)
	}
	out := make([]models.FAQCategory, 0, len(list))
	for i, item := range list {
		obj, ok := item.(*object)
		if !ok {
			return nil, fmt.Errorf("category %d: expected object", i)
		}
		var cat models.FAQCategory
		var err error
		if cat.ID, err = obj.requiredString("id"); err != nil {
			return nil, fmt.Errorf("category %d: %w", i, err)
		}
		if cat.Title, err = obj.optionalString("title"); err != nil {
			return nil, fmt.Errorf("category %s: %w", cat.ID, err)
		}
		if cat.Icon, err = obj.optionalString("icon"); err != nil {
			return nil, fmt.Errorf("category %s: %w", cat.ID, err)
		}
		if cat.FAQs, err = toEntries(obj.vals["faqs"]); err != nil {
			return nil, fmt.Errorf("category %s: %w", cat.ID, err)
		}
		out = append(out, cat)
	}
	return out, nil
}

func toEntries(v any) ([]models.FAQEntry, error) {
	if v == nil {
		return []models.FAQEntry{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("faqs must be an array")
	}
	out := make([]models.FAQEntry, 0, len(list))
	for i, item := range list {
		obj, ok := item.(*object)
		if !ok {
			return nil, fmt.Errorf("faq %d: expected object", i)
		}
		var e models.FAQEntry
		var err error
		if e.ID, err = obj.requiredString("id"); err != nil {
			return nil, fmt.Errorf("faq %d: %w", i, err)
		}
		if e.Question, err = obj.optionalString("question"); err != nil {
			return nil, fmt.Errorf("faq %s: %w", e.ID, err)
		}
		if e.Answer, err = obj.optionalString("answer"); err != nil {
			return nil, fmt.Errorf("faq %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (o *object) requiredString(key string) (string, error) {
	if _, ok := o.vals[key]; !ok {
		return "", fmt.Errorf("object at %d:%d: missing %q", o.line, o.col, key)
	}
	return o.optionalString(key)
}

func (o *object) optionalString(key string) (string, error) {
	v, ok := o.vals[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("object at %d:%d: %q must be a string", o.line, o.col, key)
	}
	return s, nil
}
