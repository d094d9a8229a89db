package dashboard

import (
	"time"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/models"
	"github.com/JhonyKing/think-chess-sub001/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetDashboard handles dashboard page
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Panel",
		"CurrentPage": "dashboard",
		"user":        user,
	})
}

// GetDashboardStatsAPI returns the headline numbers for the dashboard cards
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	month := time.Now().Format("2006-01")

	var activeStudents, activeCourses, supplierCount int
	var monthPayments, monthExpenses float64

	stats := []struct {
		query string
		args  []interface{}
		dest  interface{}
	}{
		{`SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL`, nil, &activeStudents},
		{`SELECT COUNT(*) FROM courses WHERE is_active = true AND deleted_at IS NULL`, nil, &activeCourses},
		{`SELECT COUNT(*) FROM suppliers WHERE deleted_at IS NULL`, nil, &supplierCount},
		{`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE month_paid = $1 AND deleted_at IS NULL`, []interface{}{month}, &monthPayments},
		{`SELECT COALESCE(SUM(amount), 0) FROM expenses
			WHERE date_trunc('month', spent_at) = date_trunc('month', NOW()) AND deleted_at IS NULL`, nil, &monthExpenses},
	}
	for _, s := range stats {
		if err := db.QueryRow(s.query, s.args...).Scan(s.dest); err != nil {
			utils.Logger().Error("dashboard stats query failed", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "No se pudieron cargar las estadísticas"})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"active_students": activeStudents,
			"active_courses":  activeCourses,
			"suppliers":       supplierCount,
			"month_payments":  monthPayments,
			"month_expenses":  monthExpenses,
		},
	})
}
