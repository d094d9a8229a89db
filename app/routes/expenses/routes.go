package expenses

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupExpensesRoutes(app *fiber.App) {
	canManage := auth.RequirePermission(func(p models.Permissions) bool { return p.Expenses })

	// Web Routes
	web := app.Group("/expenses")
	web.Use(auth.AuthMiddleware, canManage)
	web.Get("/", ExpensesPageHandler)

	// API Routes
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware, canManage)
	api.Get("/", GetExpensesAPI)
	api.Get("/next-id", GetNextExpenseIDAPI)
	api.Post("/", CreateExpenseAPI)
	api.Put("/:id", UpdateExpenseAPI)
	api.Delete("/:id", DeleteExpenseAPI)
}
