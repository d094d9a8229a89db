package dashboard

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JhonyKing/think-chess-sub001/app/config"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
)

func TestGetDashboardStatsAPIUnreachableDatabase(t *testing.T) {
	// sql.Open is lazy, so the connection failure surfaces on the first Scan.
	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	prev := config.AppConfig
	config.AppConfig = &config.Config{DB: db}
	defer func() { config.AppConfig = prev }()

	app := fiber.New()
	app.Get("/api/dashboard/stats", GetDashboardStatsAPI)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500 when the database is unreachable, got %d", resp.StatusCode)
	}
}
