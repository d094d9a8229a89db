package users

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const pageSize = 10

// AvatarDir is where uploaded avatars land; main serves it under /uploads.
const AvatarDir = "./uploads/avatars"

func GetUsersAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	users, totalCount, err := GetUsers(config.GetDB(), c.Query("search"), c.Query("user_type"),
		pageSize, (page-1)*pageSize)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los usuarios"})
	}

	return c.JSON(fiber.Map{
		"rows":        users,
		"total_count": totalCount,
	})
}

// createUserRequest carries the write-only password that models.User hides
// from JSON.
type createUserRequest struct {
	Username    string             `json:"username"`
	Password    string             `json:"password"`
	UserType    string             `json:"user_type"`
	IsActive    *bool              `json:"is_active"`
	Permissions models.Permissions `json:"permissions"`
}

func CreateUserAPI(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El nombre de usuario es obligatorio"})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La contrasena debe tener al menos 8 caracteres"})
	}
	if req.UserType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El tipo de usuario es obligatorio"})
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	user := &models.User{
		Username:    req.Username,
		Password:    req.Password,
		UserType:    req.UserType,
		IsActive:    active,
		Permissions: req.Permissions,
	}

	if err := CreateUser(config.GetDB(), user); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func UpdateUserAPI(c *fiber.Ctx) error {
	username := c.Params("username")

	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Password != "" && len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La contrasena debe tener al menos 8 caracteres"})
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	// Username comes from the URL, never from the body: it is immutable.
	user := &models.User{
		Username:    username,
		Password:    req.Password,
		UserType:    req.UserType,
		IsActive:    active,
		Permissions: req.Permissions,
	}

	if err := UpdateUser(config.GetDB(), user); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(user)
}

func DeleteUserAPI(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == c.Locals("username").(string) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No puede eliminar su propio usuario"})
	}

	if err := DeleteUser(config.GetDB(), username); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadAvatarAPI stores the uploaded image and persists its public URL on
// the user row.
func UploadAvatarAPI(c *fiber.Ctx) error {
	username := c.Params("username")

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Falta el archivo de imagen"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de imagen no soportado"})
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(AvatarDir, name)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo guardar la imagen"})
	}

	avatarURL := "/uploads/avatars/" + name
	if err := SetUserAvatar(config.GetDB(), username, avatarURL); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"avatar_url": avatarURL})
}

// User type handlers

func GetUserTypesAPI(c *fiber.Ctx) error {
	types, err := GetUserTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los tipos de usuario"})
	}
	return c.JSON(types)
}

func CreateUserTypeAPI(c *fiber.Ctx) error {
	var t models.UserType
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(t.Function) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La funcion es obligatoria"})
	}

	if err := CreateUserType(config.GetDB(), &t); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func DeleteUserTypeAPI(c *fiber.Ctx) error {
	if err := DeleteUserType(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
