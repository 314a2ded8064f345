package router

import (
	"backend-faq/internal/config"
	"backend-faq/internal/helper"
	"backend-faq/internal/http/handler"
	"backend-faq/internal/http/middleware"
	"backend-faq/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Denylist is implemented by config.TokenDenylist.
type Denylist interface {
	middleware.RevocationChecker
	handler.TokenRevoker
}

type Deps struct {
	Log    *zap.Logger
	Store  handler.FAQStore
	Status handler.StatusMap
	Tokens *config.TokenIssuer

	// Optional: nil disables websocket updates, login, or revocation.
	Hub      *realtime.FAQHub
	Users    handler.UserStore
	Denylist Denylist

	CORSOrigins string
}

func New(d Deps) *fiber.App {
	if d.Status == nil {
		d.Status = handler.DefaultStatusMap(false)
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(d.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "FAQ API running",
		})
	})

	var revoked middleware.RevocationChecker
	var revoker handler.TokenRevoker
	if d.Denylist != nil {
		revoked = d.Denylist
		revoker = d.Denylist
	}
	requireAuth := middleware.JWTAuth(d.Tokens, revoked, d.Log)
	adminOnly := middleware.RoleAuth(helper.RoleAdmin)

	auth := &handler.Auth{Users: d.Users, Tokens: d.Tokens, Revoker: revoker, Log: d.Log}
	if d.Users != nil {
		app.Post("/auth/login", auth.Login)
	}
	app.Post("/auth/logout", requireAuth, auth.Logout)

	faqs := &handler.FAQFile{Store: d.Store, Status: d.Status, Log: d.Log}
	app.Get("/faq-file", faqs.GetFAQs)
	app.Get("/faq-file/categories", handler.GetCategories)
	app.Post("/faq-file", requireAuth, adminOnly, faqs.CreateFAQ)
	app.Put("/faq-file/:categoryId/:faqId", requireAuth, adminOnly, faqs.UpdateFAQ)
	app.Delete("/faq-file/:categoryId/:faqId", requireAuth, adminOnly, faqs.DeleteFAQ)

	if d.Hub != nil {
		app.Get("/ws/faq", handler.RequireUpgrade, handler.FAQWebSocket(d.Hub))
	}

	return app
}
