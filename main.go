package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/JhonyKing/think-chess-sub001/app/config"
	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/routes/auth"
	"github.com/JhonyKing/think-chess-sub001/app/routes/courses"
	"github.com/JhonyKing/think-chess-sub001/app/routes/dashboard"
	"github.com/JhonyKing/think-chess-sub001/app/routes/expenses"
	"github.com/JhonyKing/think-chess-sub001/app/routes/mail"
	"github.com/JhonyKing/think-chess-sub001/app/routes/payments"
	"github.com/JhonyKing/think-chess-sub001/app/routes/schools"
	"github.com/JhonyKing/think-chess-sub001/app/routes/students"
	"github.com/JhonyKing/think-chess-sub001/app/routes/suppliers"
	"github.com/JhonyKing/think-chess-sub001/app/routes/users"
	"github.com/JhonyKing/think-chess-sub001/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler answers API requests with JSON and everything else with
// the rendered error page
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("error", fiber.Map{
			"Title":        "Pagina no encontrada - Think Chess",
			"CurrentPage":  "",
			"ErrorCode":    "404",
			"ErrorTitle":   "Pagina no encontrada",
			"ErrorMessage": "La pagina que busca no existe.",
		})
	case 401:
		return c.Redirect("/auth/login")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Think Chess",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "Ocurrio un error",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Bootstrap schema and run migrations
	if err := database.Bootstrap(config.GetDB()); err != nil {
		log.Fatal("Failed to bootstrap schema:", err)
	}
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := os.MkdirAll(users.AvatarDir, 0o755); err != nil {
		log.Fatal("Failed to create uploads directory:", err)
	}

	mailer := services.NewSMTPMailer(config.GetSMTP())

	// Start background scheduler
	services.StartScheduler(config.GetDB(), mailer)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files (avatars)
	app.Static("/uploads", "./uploads")

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	payments.SetupPaymentsRoutes(app)
	expenses.SetupExpensesRoutes(app)
	suppliers.SetupSuppliersRoutes(app)
	schools.SetupSchoolsRoutes(app)
	courses.SetupCoursesRoutes(app)
	users.SetupUsersRoutes(app)
	mail.SetupMailRoutes(app, mailer)

	// Root redirect
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Server listening on :%s", port)
	log.Fatal(app.Listen(":" + port))
}
