package expenses

import (
	"errors"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"

	"github.com/gofiber/fiber/v2"
)

const pageSize = 10

func ExpensesPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("expenses/index", fiber.Map{
		"Title":       "Gastos",
		"CurrentPage": "expenses",
		"user":        user,
	})
}

func GetExpensesAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	filters := ExpenseFilters{
		Search:     c.Query("search"),
		Reason:     c.Query("reason"),
		SchoolName: c.Query("school_name"),
		SupplierID: c.Query("supplier_id"),
		GroupLabel: c.Query("group_label"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		SortBy:     c.Query("sort_by", "spent_at"),
		SortOrder:  c.Query("sort_order", "desc"),
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}

	expenses, totalCount, err := GetExpensesWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar los gastos"})
	}

	return c.JSON(fiber.Map{
		"rows":        expenses,
		"total_count": totalCount,
	})
}

// GetNextExpenseIDAPI exposes the advisory candidate ID the form pre-fills.
func GetNextExpenseIDAPI(c *fiber.Ctx) error {
	next, err := NextExpenseID(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo calcular el folio"})
	}
	return c.JSON(fiber.Map{"next_id": next})
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	if e.ID == 0 {
		next, err := NextExpenseID(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "No se pudo calcular el folio"})
		}
		e.ID = next
	}

	if err := CreateExpense(db, &e); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(e)
}

func UpdateExpenseAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense id"})
	}

	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	e.ID = id
	if err := UpdateExpense(config.GetDB(), &e); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(e)
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteExpense(config.GetDB(), id); err != nil {
		return c.Status(database.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
