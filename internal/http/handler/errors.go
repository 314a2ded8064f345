package handler

import (
	"errors"

	"backend-faq/internal/faqstore"

	"github.com/gofiber/fiber/v2"
)

// StatusRule maps every error matching Err (via errors.Is) to Status.
type StatusRule struct {
	Err    error
	Status int
}

// StatusMap is checked in order; the first matching rule wins and anything
// unmatched is a 500.
type StatusMap []StatusRule

// DefaultStatusMap reports a missing category or FAQ as 500 unless
// notFoundAs404 is set; existing admin clients expect the 500.
func DefaultStatusMap(notFoundAs404 bool) StatusMap {
	notFound := fiber.StatusInternalServerError
	if notFoundAs404 {
		notFound = fiber.StatusNotFound
	}
	return StatusMap{
		{Err: faqstore.ErrValidation, Status: fiber.StatusBadRequest},
		{Err: faqstore.ErrNotFound, Status: notFound},
		{Err: faqstore.ErrStoreUnreadable, Status: fiber.StatusInternalServerError},
		{Err: faqstore.ErrStoreWrite, Status: fiber.StatusInternalServerError},
	}
}

func (m StatusMap) StatusFor(err error) int {
	for _, rule := range m {
		if errors.Is(err, rule.Err) {
			return rule.Status
		}
	}
	return fiber.StatusInternalServerError
}
