package users

import (
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	canManage := auth.RequirePermission(func(p models.Permissions) bool { return p.Users })

	web := app.Group("/users")
	web.Use(auth.AuthMiddleware, canManage)
	web.Get("/", UsersPage)

	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware, canManage)
	api.Get("/", GetUsersAPI)
	api.Post("/", CreateUserAPI)
	api.Put("/:username", UpdateUserAPI)
	api.Delete("/:username", DeleteUserAPI)
	api.Post("/:username/avatar", UploadAvatarAPI)

	typesAPI := app.Group("/api/user-types")
	typesAPI.Use(auth.AuthMiddleware, canManage)
	typesAPI.Get("/", GetUserTypesAPI)
	typesAPI.Post("/", CreateUserTypeAPI)
	typesAPI.Delete("/:id", DeleteUserTypeAPI)
}

func UsersPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("users/index", fiber.Map{
		"Title":       "Usuarios",
		"CurrentPage": "users",
		"user":        user,
	})
}
