package faqstore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrStoreUnreadable = errors.New("faq store unreadable")
	ErrStoreWrite      = errors.New("faq store write failed")
)

// NotFoundError reports a missing category, or a missing entry within an existing category.
type NotFoundError struct {
	CategoryID string
	FAQID      string // empty when the category itself is missing
}

func (e *NotFoundError) Error() string {
	if e.FAQID == "" {
		return fmt.Sprintf("category not found: %s", e.CategoryID)
	}
	return fmt.Sprintf("FAQ not found in category: %s/%s", e.CategoryID, e.FAQID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError reports a required request field that was missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StoreUnreadableError wraps any failure to load or parse the persisted store.
type StoreUnreadableError struct {
	Path string
	Err  error
}

func (e *StoreUnreadableError) Error() string {
	return fmt.Sprintf("reading faq store %s: %v", e.Path, e.Err)
}

func (e *StoreUnreadableError) Unwrap() []error { return []error{ErrStoreUnreadable, e.Err} }

// StoreWriteError wraps any failure to persist the store. The mutation that
// triggered the write is not committed.
type StoreWriteError struct {
	Path string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("writing faq store %s: %v", e.Path, e.Err)
}

func (e *StoreWriteError) Unwrap() []error { return []error{ErrStoreWrite, e.Err} }

// SyntaxError is a parse failure with a 1-based position in the store text.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}
