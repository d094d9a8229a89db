package users

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/JhonyKing/think-chess-sub001/app/database"
	"github.com/JhonyKing/think-chess-sub001/app/models"
)

// The password column is deliberately absent from every SELECT here; only
// the auth package reads it.
const userColumns = `u.username, u.user_type, u.avatar_url, u.is_active,
			  u.perm_students, u.perm_payments, u.perm_expenses, u.perm_suppliers, u.perm_schools,
			  u.perm_courses, u.perm_users, u.perm_mail, u.perm_reports, u.perm_exports, u.perm_settings,
			  u.created_at, u.updated_at`

func scanUserRow(rows *sql.Rows) (*models.User, error) {
	u := &models.User{}
	p := &u.Permissions
	err := rows.Scan(
		&u.Username, &u.UserType, &u.AvatarURL, &u.IsActive,
		&p.Students, &p.Payments, &p.Expenses, &p.Suppliers, &p.Schools,
		&p.Courses, &p.Users, &p.Mail, &p.Reports, &p.Exports, &p.Settings,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUsers returns one page of users (password omitted) plus the unpaged
// total.
func GetUsers(db *sql.DB, search, userType string, limit, offset int) ([]*models.User, int, error) {
	conditions := []string{"u.deleted_at IS NULL"}
	args := []interface{}{}

	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("u.username ILIKE $%d", len(args)))
	}
	if userType != "" {
		args = append(args, userType)
		conditions = append(conditions, fmt.Sprintf("u.user_type = $%d", len(args)))
	}
	where := "WHERE " + strings.Join(conditions, " AND ")

	var totalCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users u `+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users u ` + where +
		fmt.Sprintf(` ORDER BY u.username LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, totalCount, nil
}

func CreateUser(db *sql.DB, u *models.User) error {
	hashed, err := database.HashPassword(u.Password)
	if err != nil {
		return database.MapError(err, "No se pudo registrar el usuario")
	}

	p := u.Permissions
	query := `INSERT INTO users (username, password, user_type, avatar_url, is_active,
			  perm_students, perm_payments, perm_expenses, perm_suppliers, perm_schools,
			  perm_courses, perm_users, perm_mail, perm_reports, perm_exports, perm_settings,
			  created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err = db.QueryRow(query, u.Username, hashed, u.UserType, u.AvatarURL, u.IsActive,
		p.Students, p.Payments, p.Expenses, p.Suppliers, p.Schools,
		p.Courses, p.Users, p.Mail, p.Reports, p.Exports, p.Settings).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return database.MapError(err, "No se pudo registrar el usuario")
	}
	u.Password = ""
	return nil
}

// UpdateUser never touches the username. The password changes only when the
// caller supplied a new one.
func UpdateUser(db *sql.DB, u *models.User) error {
	p := u.Permissions
	var result sql.Result
	var err error

	if u.Password != "" {
		var hashed string
		hashed, err = database.HashPassword(u.Password)
		if err != nil {
			return database.MapError(err, "No se pudo actualizar el usuario")
		}
		query := `UPDATE users
				  SET password = $1, user_type = $2, is_active = $3,
				      perm_students = $4, perm_payments = $5, perm_expenses = $6, perm_suppliers = $7,
				      perm_schools = $8, perm_courses = $9, perm_users = $10, perm_mail = $11,
				      perm_reports = $12, perm_exports = $13, perm_settings = $14, updated_at = NOW()
				  WHERE username = $15 AND deleted_at IS NULL`
		result, err = db.Exec(query, hashed, u.UserType, u.IsActive,
			p.Students, p.Payments, p.Expenses, p.Suppliers,
			p.Schools, p.Courses, p.Users, p.Mail,
			p.Reports, p.Exports, p.Settings, u.Username)
	} else {
		query := `UPDATE users
				  SET user_type = $1, is_active = $2,
				      perm_students = $3, perm_payments = $4, perm_expenses = $5, perm_suppliers = $6,
				      perm_schools = $7, perm_courses = $8, perm_users = $9, perm_mail = $10,
				      perm_reports = $11, perm_exports = $12, perm_settings = $13, updated_at = NOW()
				  WHERE username = $14 AND deleted_at IS NULL`
		result, err = db.Exec(query, u.UserType, u.IsActive,
			p.Students, p.Payments, p.Expenses, p.Suppliers,
			p.Schools, p.Courses, p.Users, p.Mail,
			p.Reports, p.Exports, p.Settings, u.Username)
	}
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el usuario")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, "No se pudo actualizar el usuario")
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	u.Password = ""
	return nil
}

func DeleteUser(db *sql.DB, username string) error {
	query := `UPDATE users SET deleted_at = NOW(), is_active = false WHERE username = $1`
	_, err := db.Exec(query, username)
	return database.MapError(err, "No se pudo eliminar el usuario")
}

func SetUserAvatar(db *sql.DB, username, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE username = $2 AND deleted_at IS NULL`
	result, err := db.Exec(query, avatarURL, username)
	if err != nil {
		return database.MapError(err, "No se pudo guardar la imagen")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, "No se pudo guardar la imagen")
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}

// User type queries

func GetUserTypes(db *sql.DB) ([]*models.UserType, error) {
	query := `SELECT id, function, created_at, updated_at
			  FROM user_types
			  WHERE deleted_at IS NULL
			  ORDER BY function ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []*models.UserType{}
	for rows.Next() {
		t := &models.UserType{}
		if err := rows.Scan(&t.ID, &t.Function, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func CreateUserType(db *sql.DB, t *models.UserType) error {
	query := `INSERT INTO user_types (function, created_at, updated_at)
			  VALUES ($1, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, t.Function).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return database.MapError(err, "No se pudo registrar el tipo de usuario")
}

func DeleteUserType(db *sql.DB, id string) error {
	query := `UPDATE user_types SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return database.MapError(err, "No se pudo eliminar el tipo de usuario")
}
