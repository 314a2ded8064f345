package helper

import (
	"context"
	"database/sql"
	"errors"

	"backend-faq/internal/models"
)

const RoleAdmin = "admin"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserBanned   = errors.New("user is banned")
)

func HasRole(role string, allowedRoles ...string) bool {
	for _, allowedRole := range allowedRoles {
		if role == allowedRole {
			return true
		}
	}
	return false
}

// SQLUserStore reads admin accounts from the users table.
type SQLUserStore struct {
	DB *sql.DB
}

func (s *SQLUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	query := `SELECT id, name, email, password, role, is_banned, created_at, updated_at
	          FROM users WHERE email = ?`
	err := s.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.IsBanned,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}

	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CheckActive returns ErrUserBanned for accounts flagged is_banned = 'y'.
func CheckActive(u models.User) error {
	if u.IsBanned == "y" {
		return ErrUserBanned
	}
	return nil
}
