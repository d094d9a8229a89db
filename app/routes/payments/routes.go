package payments

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	canManage := auth.RequirePermission(func(p models.Permissions) bool { return p.Payments })

	web := app.Group("/payments")
	web.Use(auth.AuthMiddleware, canManage)
	web.Get("/", PaymentsPageHandler)

	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware, canManage)
	api.Get("/", GetPaymentsAPI)
	api.Post("/", CreatePaymentAPI)
	api.Put("/:receipt", UpdatePaymentAPI)
	api.Delete("/:receipt", DeletePaymentAPI)
}
