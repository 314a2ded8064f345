package handler

import (
	"errors"

	"backend-faq/internal/faqstore"
	"backend-faq/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FAQStore is the subset of the FAQ file manager the routes use.
type FAQStore interface {
	ReadAll() ([]models.FAQCategory, error)
	ListAllFlat() ([]models.FlatFAQ, error)
	AddFAQ(categoryID string, in models.FAQInput) (models.FAQEntry, error)
	UpdateFAQ(categoryID, faqID string, in models.FAQInput) (models.FAQEntry, error)
	DeleteFAQ(categoryID, faqID string) (models.FAQEntry, error)
}

type FAQFile struct {
	Store  FAQStore
	Status StatusMap
	Log    *zap.Logger
}

// GetFAQs - Public endpoint. admin=true returns the flattened listing.
func (h *FAQFile) GetFAQs(c *fiber.Ctx) error {
	if c.QueryBool("admin", false) {
		faqs, err := h.Store.ListAllFlat()
		if err != nil {
			return h.fail(c, err, "Failed to load FAQs")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"faqs":    faqs,
		})
	}

	categories, err := h.Store.ReadAll()
	if err != nil {
		return h.fail(c, err, "Failed to load FAQs")
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"faqCategories": categories,
	})
}

// CreateFAQ - Append a FAQ to a category
func (h *FAQFile) CreateFAQ(c *fiber.Ctx) error {
	var req models.CreateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := required(map[string]string{
		"question": req.Question,
		"answer":   req.Answer,
		"category": req.Category,
	}, "question", "answer", "category"); err != nil {
		return h.fail(c, err, "")
	}

	faq, err := h.Store.AddFAQ(req.Category, models.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Slug:     req.Slug,
	})
	if err != nil {
		return h.fail(c, err, "Failed to create FAQ")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "FAQ created successfully",
		"faq":     faq,
	})
}

// UpdateFAQ - Rewrite question/answer of one FAQ in place
func (h *FAQFile) UpdateFAQ(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")
	faqID := c.Params("faqId")

	var req models.UpdateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := required(map[string]string{
		"question": req.Question,
		"answer":   req.Answer,
	}, "question", "answer"); err != nil {
		return h.fail(c, err, "")
	}

	faq, err := h.Store.UpdateFAQ(categoryID, faqID, models.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Slug:     req.Slug,
	})
	if err != nil {
		return h.fail(c, err, "Failed to update FAQ")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "FAQ updated successfully",
		"faq":     faq,
	})
}

// DeleteFAQ - Remove one FAQ permanently
func (h *FAQFile) DeleteFAQ(c *fiber.Ctx) error {
	faq, err := h.Store.DeleteFAQ(c.Params("categoryId"), c.Params("faqId"))
	if err != nil {
		return h.fail(c, err, "Failed to delete FAQ")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "FAQ deleted successfully",
		"faq":     faq,
	})
}

// GetCategories - Fixed category catalog for the admin selector
func GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": models.CategoryCatalog,
	})
}

// required reports fields that are absent or empty. Text is stored exactly
// as sent, so whitespace-only values count as present.
func required(values map[string]string, order ...string) error {
	var missing []string
	for _, field := range order {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &faqstore.ValidationError{Fields: missing}
	}
	return nil
}

// fail renders err with the status from the mapping table. Client errors
// carry their own message; server errors show generic, never an empty list.
func (h *FAQFile) fail(c *fiber.Ctx, err error, generic string) error {
	status := h.Status.StatusFor(err)

	msg := generic
	var nf *faqstore.NotFoundError
	if msg == "" || errors.As(err, &nf) || status < fiber.StatusInternalServerError {
		msg = err.Error()
	}

	if status >= fiber.StatusInternalServerError {
		h.Log.Error(generic,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}
