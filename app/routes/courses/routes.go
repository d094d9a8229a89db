package courses

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCoursesRoutes(app *fiber.App) {
	canManage := auth.RequirePermission(func(p models.Permissions) bool { return p.Courses })

	web := app.Group("/courses")
	web.Use(auth.AuthMiddleware, canManage)
	web.Get("/", CoursesPage)

	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware, canManage)
	api.Get("/", GetCoursesAPI)
	api.Post("/", CreateCourseAPI)
	api.Put("/:id", UpdateCourseAPI)
	api.Delete("/:id", DeleteCourseAPI)
}

func CoursesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("courses/index", fiber.Map{
		"Title":       "Cursos",
		"CurrentPage": "courses",
		"user":        user,
	})
}
