package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

const userColumns = `id, name, email, password, role, birthdate, photo, freetimeday, created_at, updated_at`

// CreateUser сохраняет пользователя и возвращает запись с идентификатором и метками времени.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgresql.CreateUser"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if err := storage.ValidateRecord(user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id
	user.Birthdate = user.Birthdate.UTC().Truncate(time.Microsecond)
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt

	query := `INSERT INTO users (` + userColumns + `)
			  VALUES (:id, :name, :email, :password, :role, :birthdate, :photo, :freetimeday, :created_at, :updated_at)`
	if _, err = s.DB.NamedExecContext(ctx, query, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &user, nil
}

// ListUsers возвращает пользователей по фильтру в порядке создания.
func (s *Storage) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	const op = "storage.postgresql.ListUsers"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []models.User{}, nil
	}

	var (
		conds []string
		args  []any
	)
	if filter.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, string(filter.Role))
	}
	if filter.IDs != nil {
		conds = append(conds, "id IN (?)")
		args = append(args, filter.IDs)
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users := []models.User{}
	if err = s.DB.SelectContext(ctx, &users, s.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}
