package payments

import (
	"errors"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"

	"github.com/gofiber/fiber/v2"
)

const pageSize = 10

func PaymentsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("payments/index", fiber.Map{
		"Title":       "Pagos",
		"CurrentPage": "payments",
		"user":        user,
	})
}

func GetPaymentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	filters := PaymentFilters{
		Search:    c.Query("search"),
		MonthPaid: c.Query("month_paid"),
		Method:    c.Query("payment_method"),
		Settled:   c.Query("settled"),
		Notified:  c.Query("notified"),
		CourseID:  c.Query("course_id"),
		StudentID: c.Query("student_id"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}

	payments, totalCount, err := GetPaymentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los pagos"})
	}

	return c.JSON(fiber.Map{
		"rows":        payments,
		"total_count": totalCount,
	})
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var p models.Payment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if p.ReceiptNumber <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El numero de recibo es obligatorio"})
	}

	if err := CreatePayment(config.GetDB(), &p); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func UpdatePaymentAPI(c *fiber.Ctx) error {
	receipt, err := c.ParamsInt("receipt")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receipt number"})
	}

	var p models.Payment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	p.ReceiptNumber = receipt
	if err := UpdatePayment(config.GetDB(), &p); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(p)
}

func DeletePaymentAPI(c *fiber.Ctx) error {
	receipt := c.Params("receipt")
	if err := DeletePayment(config.GetDB(), receipt); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
