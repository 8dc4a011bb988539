// Package postgresql реализует хранилище пользователей, сессий и резервов
// на PostgreSQL (драйвер pgx через database/sql, запросы через sqlx).
// Идентификаторы — строки UUIDv7, упорядоченные по времени создания.
package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/tutor-booking/internal/config"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

// Storage инкапсулирует пул соединений с PostgreSQL.
type Storage struct {
	DB *sqlx.DB
}

// New открывает пул соединений и проверяет доступность базы.
func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := sqlx.Open("pgx", cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{DB: db}, nil
}

// Ping проверяет соединение с базой.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.postgresql.Ping"
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *Storage) Close(_ context.Context) error {
	return s.DB.Close()
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func checkID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.Invalid(field, "is not a valid identifier")
	}
	return nil
}

// now возвращает текущее время, усечённое до точности TIMESTAMPTZ.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// mapError переводит нарушения ограничений схемы в storage.ErrValidation.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return storage.Violation("duplicate value violates " + pgErr.ConstraintName)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return storage.Violation(pgErr.Message)
		}
	}
	return err
}

func contextDone(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}
