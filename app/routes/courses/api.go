package courses

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

var courseSortColumns = map[string]string{
	"id":          "c.id",
	"name":        "c.name",
	"school":      "s.name",
	"monthly_fee": "c.monthly_fee",
}

func GetCoursesAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	conditions := []string{"c.deleted_at IS NULL"}
	args := []interface{}{}

	if search := c.Query("search"); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(c.name ILIKE $%[1]d OR c.group_label ILIKE $%[1]d)", len(args)))
	}
	if schoolID := c.Query("school_id"); schoolID != "" {
		args = append(args, schoolID)
		conditions = append(conditions, fmt.Sprintf("c.school_id = $%d", len(args)))
	}
	if c.Query("active") == "true" {
		conditions = append(conditions, "c.is_active = true")
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	sortCol, ok := courseSortColumns[c.Query("sort_by")]
	if !ok {
		sortCol = "c.name"
	}
	sortDir := "ASC"
	if strings.EqualFold(c.Query("sort_order"), "desc") {
		sortDir = "DESC"
	}

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM courses c LEFT JOIN schools s ON c.school_id = s.id ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los cursos"})
	}

	query := `SELECT c.id, c.name, c.school_id, c.group_label, c.monthly_fee, c.is_active,
			  c.created_at, c.updated_at, s.id, s.name
			  FROM courses c
			  LEFT JOIN schools s ON c.school_id = s.id ` +
		where + fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, sortDir, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := db.Query(query, args...)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los cursos"})
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		var groupLabel sql.NullString
		var schoolID sql.NullInt64
		var schoolName sql.NullString
		err := rows.Scan(
			&course.ID, &course.Name, &course.SchoolID, &groupLabel, &course.MonthlyFee,
			&course.IsActive, &course.CreatedAt, &course.UpdatedAt, &schoolID, &schoolName,
		)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los cursos"})
		}
		course.GroupLabel = groupLabel.String
		if schoolID.Valid {
			course.School = &models.School{ID: int(schoolID.Int64), Name: schoolName.String}
		}
		courses = append(courses, course)
	}

	return c.JSON(fiber.Map{
		"rows":        courses,
		"total_count": totalCount,
	})
}

func CreateCourseAPI(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(course.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El nombre del curso es obligatorio"})
	}

	query := `INSERT INTO courses (name, school_id, group_label, monthly_fee, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := config.GetDB().QueryRow(query, strings.TrimSpace(course.Name), course.SchoolID,
		course.GroupLabel, course.MonthlyFee, course.IsActive).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		mapped := database.MapError(err, "No se pudo registrar el curso")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func UpdateCourseAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	course.ID = id

	query := `UPDATE courses
			  SET name = $1, school_id = $2, group_label = $3, monthly_fee = $4, is_active = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL
			  RETURNING created_at, updated_at`
	err = config.GetDB().QueryRow(query, course.Name, course.SchoolID, course.GroupLabel,
		course.MonthlyFee, course.IsActive, course.ID).
		Scan(&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": database.ErrNotFound.Error()})
		}
		mapped := database.MapError(err, "No se pudo actualizar el curso")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}

	return c.JSON(course)
}

func DeleteCourseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	_, err := config.GetDB().Exec(`UPDATE courses SET deleted_at = NOW() WHERE id = $1`, id)
	if err != nil {
		mapped := database.MapError(err, "No se pudo eliminar el curso")
		return c.Status(database.StatusFor(mapped)).JSON(fiber.Map{"error": mapped.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
