package schools

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"

	"github.com/gofiber/fiber/v2"
)

const pageSize = 10

func GetSchoolsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	search := c.Query("search")
	sortOrder := "ASC"
	if strings.EqualFold(c.Query("sort_order"), "desc") {
		sortOrder = "DESC"
	}

	where := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%[1]d OR address ILIKE $%[1]d)", len(args))
	}

	var totalCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schools `+where, args...).Scan(&totalCount); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar las escuelas"})
	}

	query := `SELECT id, name, address, phone, created_at, updated_at FROM schools ` + where +
		` ORDER BY name ` + sortOrder +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := db.Query(query, args...)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar las escuelas"})
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		s := &models.School{}
		var address, phone sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &address, &phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar las escuelas"})
		}
		s.Address = address.String
		s.Phone = phone.String
		schools = append(schools, s)
	}

	return c.JSON(fiber.Map{
		"rows":        schools,
		"total_count": totalCount,
	})
}

func CreateSchoolAPI(c *fiber.Ctx) error {
	var s models.School
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(s.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El nombre de la escuela es obligatorio"})
	}

	query := `INSERT INTO schools (name, address, phone, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := config.GetDB().QueryRow(query, strings.TrimSpace(s.Name), s.Address, s.Phone).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		mapped := database.MapError(err, "No se pudo registrar la escuela")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(s)
}

func UpdateSchoolAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid school id"})
	}

	var s models.School
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	s.ID = id

	query := `UPDATE schools SET name = $1, address = $2, phone = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL
			  RETURNING created_at, updated_at`
	err = config.GetDB().QueryRow(query, s.Name, s.Address, s.Phone, s.ID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": database.ErrNotFound.Error()})
		}
		mapped := database.MapError(err, "No se pudo actualizar la escuela")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}

	return c.JSON(s)
}

func DeleteSchoolAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	_, err := config.GetDB().Exec(`UPDATE schools SET deleted_at = NOW() WHERE id = $1`, id)
	if err != nil {
		mapped := database.MapError(err, "No se pudo eliminar la escuela")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
