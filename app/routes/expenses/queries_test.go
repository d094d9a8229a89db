package expenses

import (
	"strings"
	"testing"
)

func TestBuildExpenseWhereNoFilters(t *testing.T) {
	where, args := BuildExpenseWhere(ExpenseFilters{})

	if where != "WHERE e.deleted_at IS NULL" {
		t.Errorf("unexpected clause: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildExpenseWhereAllFilters(t *testing.T) {
	f := ExpenseFilters{
		Search:     "tablero",
		Reason:     "MATERIAL",
		SchoolName: "Colegio Norte",
		SupplierID: "3",
		GroupLabel: "A",
		DateFrom:   "2026-01-01",
		DateTo:     "2026-12-31",
	}
	where, args := BuildExpenseWhere(f)

	if len(args) != 7 {
		t.Fatalf("expected 7 args, got %d: %v", len(args), args)
	}
	if args[0] != "%tablero%" {
		t.Errorf("search arg not wrapped for ILIKE: %v", args[0])
	}
	for i := 1; i <= 7; i++ {
		if !strings.Contains(where, "$"+string(rune('0'+i))) {
			t.Errorf("clause missing placeholder $%d: %q", i, where)
		}
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name string
		f    ExpenseFilters
		want string
	}{
		{name: "default", f: ExpenseFilters{}, want: "ORDER BY e.spent_at DESC"},
		{name: "whitelisted asc", f: ExpenseFilters{SortBy: "amount"}, want: "ORDER BY e.amount ASC"},
		{name: "whitelisted desc", f: ExpenseFilters{SortBy: "supplier", SortOrder: "desc"}, want: "ORDER BY s.name DESC"},
		{name: "unknown column falls back", f: ExpenseFilters{SortBy: "password; DROP TABLE expenses"}, want: "ORDER BY e.spent_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderClause(tt.f); got != tt.want {
				t.Errorf("OrderClause = %q, want %q", got, tt.want)
			}
		})
	}
}
