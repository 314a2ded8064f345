package handler

import (
	"backend-faq/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logout revokes the caller's token when a revoker is configured; otherwise
// the token stays valid until it expires and the client just drops it.
func (h *Auth) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*config.JWTClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing token claims",
		})
	}

	if h.Revoker != nil && claims.ExpiresAt != nil {
		if err := h.Revoker.Revoke(c.UserContext(), claims.ID, claims.ExpiresAt.Time); err != nil {
			h.Log.Error("token revocation failed", zap.String("jti", claims.ID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Logout failed",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}
