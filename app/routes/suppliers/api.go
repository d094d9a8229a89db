package suppliers

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

func GetSuppliersAPI(c *fiber.Ctx) error {
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
		where += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}

	var totalCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM suppliers `+where, args...).Scan(&totalCount); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los proveedores"})
	}

	query := `SELECT id, name, created_at, updated_at FROM suppliers ` + where +
		` ORDER BY name ` + sortOrder +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := db.Query(query, args...)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los proveedores"})
	}
	defer rows.Close()

	suppliers := []*models.Supplier{}
	for rows.Next() {
		s := &models.Supplier{}
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los proveedores"})
		}
		suppliers = append(suppliers, s)
	}

	return c.JSON(fiber.Map{
		"rows":        suppliers,
		"total_count": totalCount,
	})
}

func CreateSupplierAPI(c *fiber.Ctx) error {
	var s models.Supplier
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(s.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El nombre del proveedor es obligatorio"})
	}

	query := `INSERT INTO suppliers (name, created_at, updated_at)
			  VALUES ($1, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := config.GetDB().QueryRow(query, strings.TrimSpace(s.Name)).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		mapped := database.MapError(err, "No se pudo registrar el proveedor")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(s)
}

func UpdateSupplierAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier id"})
	}

	var s models.Supplier
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	s.ID = id

	query := `UPDATE suppliers SET name = $1, updated_at = NOW()
			  WHERE id = $2 AND deleted_at IS NULL
			  RETURNING created_at, updated_at`
	err = config.GetDB().QueryRow(query, s.Name, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": database.ErrNotFound.Error()})
		}
		mapped := database.MapError(err, "No se pudo actualizar el proveedor")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}

	return c.JSON(s)
}

func DeleteSupplierAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	_, err := config.GetDB().Exec(`UPDATE suppliers SET deleted_at = NOW() WHERE id = $1`, id)
	if err != nil {
		mapped := database.MapError(err, "No se pudo eliminar el proveedor")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
