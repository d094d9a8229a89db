package students

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search     string
	Status     string
	CourseID   string
	SchoolName string
	DateFrom   string
	DateTo     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

var studentSortColumns = map[string]string{
	"id":          "st.id",
	"name":        "st.name",
	"school":      "st.school_name",
	"course":      "c.name",
	"enrolled_at": "st.enrolled_at",
}

// BuildStudentWhere assembles the WHERE clause and args for the filters.
func BuildStudentWhere(f StudentFilters) (string, []interface{}) {
	conditions := []string{"st.deleted_at IS NULL"}
	args := []interface{}{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(st.name ILIKE $%[1]d OR st.guardian_name ILIKE $%[1]d OR st.email ILIKE $%[1]d)", len(args)))
	}
	switch f.Status {
	case "active":
		conditions = append(conditions, "st.is_active = true")
	case "inactive":
		conditions = append(conditions, "st.is_active = false")
	}
	if f.CourseID != "" {
		args = append(args, f.CourseID)
		conditions = append(conditions, fmt.Sprintf("st.course_id = $%d", len(args)))
	}
	if f.SchoolName != "" {
		args = append(args, f.SchoolName)
		conditions = append(conditions, fmt.Sprintf("st.school_name = $%d", len(args)))
	}
	if f.DateFrom != "" {
		args = append(args, f.DateFrom)
		conditions = append(conditions, fmt.Sprintf("st.enrolled_at >= $%d", len(args)))
	}
	if f.DateTo != "" {
		args = append(args, f.DateTo)
		conditions = append(conditions, fmt.Sprintf("st.enrolled_at <= $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// GetStudentsWithFilters returns one page of students plus the unpaged total.
func GetStudentsWithFilters(db *sql.DB, f StudentFilters) ([]*models.Student, int, error) {
	where, args := BuildStudentWhere(f)

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM students st LEFT JOIN courses c ON st.course_id = c.id ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	sortCol, ok := studentSortColumns[f.SortBy]
	if !ok {
		sortCol = "st.name"
	}
	sortDir := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		sortDir = "DESC"
	}

	query := `SELECT st.id, st.name, st.guardian_name, st.email, st.phone, st.school_name,
			  st.course_id, st.is_active, st.enrolled_at, st.created_at, st.updated_at,
			  c.id, c.name, c.group_label
			  FROM students st
			  LEFT JOIN courses c ON st.course_id = c.id ` +
		where + fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, sortDir, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []*models.Student{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		st := &models.Student{}
		var guardian, email, phone sql.NullString
		var courseID sql.NullInt64
		var courseName, courseGroup sql.NullString
		err := rows.Scan(
			&st.ID, &st.Name, &guardian, &email, &phone, &st.SchoolName,
			&st.CourseID, &st.IsActive, &st.EnrolledAt, &st.CreatedAt, &st.UpdatedAt,
			&courseID, &courseName, &courseGroup,
		)
		if err != nil {
			return nil, 0, err
		}
		st.GuardianName = guardian.String
		st.Email = email.String
		st.Phone = phone.String

		if courseID.Valid {
			st.Course = &models.Course{
				ID:         int(courseID.Int64),
				Name:       courseName.String,
				GroupLabel: courseGroup.String,
			}
		}
		students = append(students, st)
	}
	return students, totalCount, nil
}

func CreateStudent(db *sql.DB, st *models.Student) error {
	query := `INSERT INTO students (name, guardian_name, email, phone, school_name, course_id, is_active, enrolled_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, st.Name, st.GuardianName, st.Email, st.Phone,
		st.SchoolName, st.CourseID, st.IsActive, st.EnrolledAt).
		Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
	return database.MapError(err, "No se pudo registrar el alumno")
}

func UpdateStudent(db *sql.DB, st *models.Student) error {
	query := `UPDATE students
			  SET name = $1, guardian_name = $2, email = $3, phone = $4, school_name = $5,
			      course_id = $6, is_active = $7, enrolled_at = $8, updated_at = NOW()
			  WHERE id = $9 AND deleted_at IS NULL`

	result, err := db.Exec(query, st.Name, st.GuardianName, st.Email, st.Phone,
		st.SchoolName, st.CourseID, st.IsActive, st.EnrolledAt, st.ID)
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el alumno")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el alumno")
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}

func DeleteStudent(db *sql.DB, id string) error {
	query := `UPDATE students SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return database.MapError(err, "No se pudo eliminar el alumno")
}
