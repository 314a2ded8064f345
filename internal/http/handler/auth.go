package handler

import (
	"context"
	"errors"
	"time"

	"backend-faq/internal/config"
	"backend-faq/internal/helper"
	"backend-faq/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// TokenRevoker persists logout so the token is rejected until it expires.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
}

type Auth struct {
	Users   UserStore
	Tokens  *config.TokenIssuer
	Revoker TokenRevoker
	Log     *zap.Logger
}

func (h *Auth) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	user, err := h.Users.FindByEmail(c.UserContext(), req.Email)
	if errors.Is(err, helper.ErrUserNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}

	if err := helper.CheckActive(user); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Your account has been blocked",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	token, _, err := h.Tokens.GenerateToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		h.Log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	h.Log.Info("user logged in", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	return c.JSON(fiber.Map{
		"token":   token,
		"user":    models.ToUserResponse(user),
		"message": "Login successful. Welcome back, " + user.Name,
	})
}
