package payments

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"
)

// PaymentFilters represents filtering options for the payments table
type PaymentFilters struct {
	Search    string
	MonthPaid string
	Method    string
	Settled   string
	Notified  string
	CourseID  string
	StudentID string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

var paymentSortColumns = map[string]string{
	"receipt_number": "p.receipt_number",
	"amount":         "p.amount",
	"month_paid":     "p.month_paid",
	"paid_at":        "p.paid_at",
	"student":        "st.name",
}

// BuildPaymentWhere assembles the WHERE clause and args for the filters.
func BuildPaymentWhere(f PaymentFilters) (string, []interface{}) {
	conditions := []string{"p.deleted_at IS NULL"}
	args := []interface{}{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(p.control_number ILIKE $%[1]d OR p.note ILIKE $%[1]d OR st.name ILIKE $%[1]d)", len(args)))
	}
	if f.MonthPaid != "" {
		args = append(args, f.MonthPaid)
		conditions = append(conditions, fmt.Sprintf("p.month_paid = $%d", len(args)))
	}
	if f.Method != "" {
		args = append(args, f.Method)
		conditions = append(conditions, fmt.Sprintf("p.payment_method = $%d", len(args)))
	}
	switch f.Settled {
	case "true":
		conditions = append(conditions, "p.settled = true")
	case "false":
		conditions = append(conditions, "p.settled = false")
	}
	switch f.Notified {
	case "true":
		conditions = append(conditions, "p.notified = true")
	case "false":
		conditions = append(conditions, "p.notified = false")
	}
	if f.CourseID != "" {
		args = append(args, f.CourseID)
		conditions = append(conditions, fmt.Sprintf("p.course_id = $%d", len(args)))
	}
	if f.StudentID != "" {
		args = append(args, f.StudentID)
		conditions = append(conditions, fmt.Sprintf("p.student_id = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// GetPaymentsWithFilters returns one page of payments plus the unpaged total.
func GetPaymentsWithFilters(db *sql.DB, f PaymentFilters) ([]*models.Payment, int, error) {
	where, args := BuildPaymentWhere(f)

	joins := `FROM payments p
			  LEFT JOIN students st ON p.student_id = st.id
			  LEFT JOIN courses c ON p.course_id = c.id `

	var totalCount int
	if err := db.QueryRow(`SELECT COUNT(*) `+joins+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	sortCol, ok := paymentSortColumns[f.SortBy]
	if !ok {
		sortCol = "p.paid_at"
	}
	sortDir := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") || f.SortBy == "" {
		sortDir = "DESC"
	}

	query := `SELECT p.receipt_number, p.control_number, p.amount, p.month_paid, p.paid_at,
			  p.payment_method, p.note, p.notified, p.settled, p.course_id, p.student_id,
			  p.has_scholarship, p.scholarship_amount, p.scholarship_percentage,
			  p.created_at, p.updated_at,
			  st.id, st.name, c.id, c.name ` +
		joins + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, sortDir, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := []*models.Payment{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		p := &models.Payment{}
		var controlNumber, note sql.NullString
		var studentID, courseID sql.NullInt64
		var studentName, courseName sql.NullString
		err := rows.Scan(
			&p.ReceiptNumber, &controlNumber, &p.Amount, &p.MonthPaid, &p.PaidAt,
			&p.PaymentMethod, &note, &p.Notified, &p.Settled, &p.CourseID, &p.StudentID,
			&p.HasScholarship, &p.ScholarshipAmount, &p.ScholarshipPercentage,
			&p.CreatedAt, &p.UpdatedAt,
			&studentID, &studentName, &courseID, &courseName,
		)
		if err != nil {
			return nil, 0, err
		}
		p.ControlNumber = controlNumber.String
		p.Note = note.String

		if studentID.Valid {
			p.Student = &models.Student{ID: int(studentID.Int64), Name: studentName.String}
		}
		if courseID.Valid {
			p.Course = &models.Course{ID: int(courseID.Int64), Name: courseName.String}
		}
		payments = append(payments, p)
	}
	return payments, totalCount, nil
}

func CreatePayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (receipt_number, control_number, amount, month_paid, paid_at,
			  payment_method, note, notified, settled, course_id, student_id,
			  has_scholarship, scholarship_amount, scholarship_percentage, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := db.QueryRow(query, p.ReceiptNumber, p.ControlNumber, p.Amount, p.MonthPaid, p.PaidAt,
		p.PaymentMethod, p.Note, p.Notified, p.Settled, p.CourseID, p.StudentID,
		p.HasScholarship, p.ScholarshipAmount, p.ScholarshipPercentage).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	return database.MapError(err, "No se pudo registrar el pago")
}

func UpdatePayment(db *sql.DB, p *models.Payment) error {
	query := `UPDATE payments
			  SET control_number = $1, amount = $2, month_paid = $3, paid_at = $4,
			      payment_method = $5, note = $6, notified = $7, settled = $8,
			      course_id = $9, student_id = $10, has_scholarship = $11,
			      scholarship_amount = $12, scholarship_percentage = $13, updated_at = NOW()
			  WHERE receipt_number = $14 AND deleted_at IS NULL`

	result, err := db.Exec(query, p.ControlNumber, p.Amount, p.MonthPaid, p.PaidAt,
		p.PaymentMethod, p.Note, p.Notified, p.Settled, p.CourseID, p.StudentID,
		p.HasScholarship, p.ScholarshipAmount, p.ScholarshipPercentage, p.ReceiptNumber)
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el pago")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el pago")
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}

func DeletePayment(db *sql.DB, receiptNumber string) error {
	query := `UPDATE payments SET deleted_at = NOW() WHERE receipt_number = $1`
	_, err := db.Exec(query, receiptNumber)
	return database.MapError(err, "No se pudo eliminar el pago")
}
