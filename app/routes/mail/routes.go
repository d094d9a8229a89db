package mail

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"
	"github.com/JhonyKing/think-chess-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMailRoutes(app *fiber.App, m services.Mailer) {
	mailer = m

	canSend := auth.RequirePermission(func(p models.Permissions) bool { return p.Mail })
	canConfigure := auth.RequirePermission(func(p models.Permissions) bool { return p.Settings })

	web := app.Group("/mail")
	web.Use(auth.AuthMiddleware, canSend)
	web.Get("/", MailPageHandler)

	api := app.Group("/api/mail")
	api.Use(auth.AuthMiddleware)
	api.Post("/send", canSend, SendMailAPI)
	api.Get("/templates", canConfigure, GetTemplatesAPI)
	api.Put("/templates/:key", canConfigure, UpdateTemplateAPI)
}
