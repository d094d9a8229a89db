package schools

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSchoolsRoutes(app *fiber.App) {
	canManage := auth.RequirePermission(func(p models.Permissions) bool { return p.Schools })

	web := app.Group("/schools")
	web.Use(auth.AuthMiddleware, canManage)
	web.Get("/", SchoolsPage)

	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware, canManage)
	api.Get("/", GetSchoolsAPI)
	api.Post("/", CreateSchoolAPI)
	api.Put("/:id", UpdateSchoolAPI)
	api.Delete("/:id", DeleteSchoolAPI)
}

func SchoolsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("schools/index", fiber.Map{
		"Title":       "Escuelas",
		"CurrentPage": "schools",
		"user":        user,
	})
}
