package expenses

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"
)

// ExpenseFilters represents filtering options for the expenses table
type ExpenseFilters struct {
	Search     string
	Reason     string
	SchoolName string
	SupplierID string
	GroupLabel string
	DateFrom   string
	DateTo     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

var expenseSortColumns = map[string]string{
	"id":       "e.id",
	"reason":   "e.reason",
	"amount":   "e.amount",
	"spent_at": "e.spent_at",
	"school":   "e.school_name",
	"supplier": "s.name",
}

// BuildExpenseWhere assembles the WHERE clause and ordered args for the
// given filters. Exposed for the handler and its tests.
func BuildExpenseWhere(f ExpenseFilters) (string, []interface{}) {
	conditions := []string{"e.deleted_at IS NULL"}
	args := []interface{}{}

	addArg := func(cond string, v interface{}) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if f.Search != "" {
		addArg("(e.reason ILIKE $%[1]d OR e.note ILIKE $%[1]d OR e.group_label ILIKE $%[1]d)", "%"+f.Search+"%")
	}
	if f.Reason != "" {
		addArg("e.reason = $%d", f.Reason)
	}
	if f.SchoolName != "" {
		addArg("e.school_name = $%d", f.SchoolName)
	}
	if f.SupplierID != "" {
		addArg("e.supplier_id = $%d", f.SupplierID)
	}
	if f.GroupLabel != "" {
		addArg("e.group_label = $%d", f.GroupLabel)
	}
	if f.DateFrom != "" {
		addArg("e.spent_at >= $%d", f.DateFrom)
	}
	if f.DateTo != "" {
		addArg("e.spent_at <= $%d", f.DateTo)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// OrderClause resolves the sort key against the whitelist; unknown keys fall
// back to spent_at descending.
func OrderClause(f ExpenseFilters) string {
	col, ok := expenseSortColumns[f.SortBy]
	if !ok {
		return "ORDER BY e.spent_at DESC"
	}
	dir := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}

// GetExpensesWithFilters returns one page of expenses plus the unpaged total.
func GetExpensesWithFilters(db *sql.DB, f ExpenseFilters) ([]*models.Expense, int, error) {
	where, args := BuildExpenseWhere(f)

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM expenses e LEFT JOIN suppliers s ON e.supplier_id = s.id ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT e.id, e.reason, e.amount, e.note, e.spent_at, e.school_name,
			  e.supplier_id, e.group_label, e.created_at, e.updated_at, s.id, s.name
			  FROM expenses e
			  LEFT JOIN suppliers s ON e.supplier_id = s.id ` +
		where + " " + OrderClause(f) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	expenses := []*models.Expense{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.Expense{}
		var note, groupLabel sql.NullString
		var supID sql.NullInt64
		var supName sql.NullString
		err := rows.Scan(
			&e.ID, &e.Reason, &e.Amount, &note, &e.SpentAt, &e.SchoolName,
			&e.SupplierID, &groupLabel, &e.CreatedAt, &e.UpdatedAt, &supID, &supName,
		)
		if err != nil {
			return nil, 0, err
		}
		e.Note = note.String
		e.GroupLabel = groupLabel.String

		if supID.Valid {
			e.Supplier = &models.Supplier{
				ID:   int(supID.Int64),
				Name: supName.String,
			}
		}
		expenses = append(expenses, e)
	}
	return expenses, totalCount, nil
}

// NextExpenseID returns max existing ID + 1, or 1 when the table is empty.
//
// Advisory only: two concurrent creators can read the same candidate and the
// second insert will hit the primary key constraint. That constraint, not
// this query, is what guarantees uniqueness; a collision surfaces as the
// generic creation failure.
func NextExpenseID(db *sql.DB) (int, error) {
	var next sql.NullInt64
	err := db.QueryRow(`SELECT COALESCE(MAX(id), 0) + 1 FROM expenses`).Scan(&next)
	if err != nil {
		return 0, err
	}
	if !next.Valid || next.Int64 < 1 {
		return 1, nil
	}
	return int(next.Int64), nil
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (id, reason, amount, note, spent_at, school_name, supplier_id, group_label, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := db.QueryRow(query, e.ID, e.Reason, e.Amount, e.Note, e.SpentAt,
		e.SchoolName, e.SupplierID, e.GroupLabel).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	return database.MapError(err, "No se pudo registrar el gasto")
}

func UpdateExpense(db *sql.DB, e *models.Expense) error {
	query := `UPDATE expenses
			  SET reason = $1, amount = $2, note = $3, spent_at = $4, school_name = $5,
			      supplier_id = $6, group_label = $7, updated_at = NOW()
			  WHERE id = $8 AND deleted_at IS NULL`

	result, err := db.Exec(query, e.Reason, e.Amount, e.Note, e.SpentAt,
		e.SchoolName, e.SupplierID, e.GroupLabel, e.ID)
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el gasto")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el gasto")
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}

func DeleteExpense(db *sql.DB, id string) error {
	query := `UPDATE expenses SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return database.MapError(err, "No se pudo eliminar el gasto")
}
