package suppliers

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSuppliersRoutes(app *fiber.App) {
	canManage := auth.RequirePermission(func(p models.Permissions) bool { return p.Suppliers })

	web := app.Group("/suppliers")
	web.Use(auth.AuthMiddleware, canManage)
	web.Get("/", SuppliersPage)

	api := app.Group("/api/suppliers")
	api.Use(auth.AuthMiddleware, canManage)
	api.Get("/", GetSuppliersAPI)
	api.Post("/", CreateSupplierAPI)
	api.Put("/:id", UpdateSupplierAPI)
	api.Delete("/:id", DeleteSupplierAPI)
}

func SuppliersPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("suppliers/index", fiber.Map{
		"Title":       "Proveedores",
		"CurrentPage": "suppliers",
		"user":        user,
	})
}
