package students

import (
	"errors"
	"time"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"

	"github.com/gofiber/fiber/v2"
)

const pageSize = 10

func GetStudentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	filters := StudentFilters{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		CourseID:   c.Query("course_id"),
		SchoolName: c.Query("school_name"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		SortBy:     c.Query("sort_by", "name"),
		SortOrder:  c.Query("sort_order", "asc"),
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}

	students, totalCount, err := GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los alumnos"})
	}

	return c.JSON(fiber.Map{
		"rows":        students,
		"total_count": totalCount,
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if st.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El nombre del alumno es obligatorio"})
	}
	if st.EnrolledAt.IsZero() {
		st.EnrolledAt = time.Now()
	}

	if err := CreateStudent(config.GetDB(), &st); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(st)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	st.ID = id
	if err := UpdateStudent(config.GetDB(), &st); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(st)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteStudent(config.GetDB(), id); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
