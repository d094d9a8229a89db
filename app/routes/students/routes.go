package students

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	canManage := auth.RequirePermission(func(p models.Permissions) bool { return p.Students })

	web := app.Group("/students")
	web.Use(auth.AuthMiddleware, canManage)
	web.Get("/", StudentsPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware, canManage)
	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("students/index", fiber.Map{
		"Title":       "Alumnos",
		"CurrentPage": "students",
		"user":        user,
	})
}
