package database

import (
	"database/sql"

	"github.com/JhonyKing/think-chess-sub001/app/models"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

const userColumns = `username, password, user_type, avatar_url, is_active,
			  perm_students, perm_payments, perm_expenses, perm_suppliers, perm_schools,
			  perm_courses, perm_users, perm_mail, perm_reports, perm_exports, perm_settings,
			  created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	p := &user.Permissions
	err := row.Scan(
		&user.Username, &user.Password, &user.UserType, &user.AvatarURL, &user.IsActive,
		&p.Students, &p.Payments, &p.Expenses, &p.Suppliers, &p.Schools,
		&p.Courses, &p.Users, &p.Mail, &p.Reports, &p.Exports, &p.Settings,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByUsername fetches an active user including the password hash. Only
// the auth package may call this; every other query path leaves the password
// out.
func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users WHERE username = $1 AND is_active = true AND deleted_at IS NULL`
	return scanUser(db.QueryRow(query, username))
}

func UpdateUserPassword(db *sql.DB, username string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE username = $2`
	_, err := db.Exec(query, hashedPassword, username)
	return err
}
