package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

const sessionColumns = `id, student_id, tutor_id, date, duration, comment, meeting, canceled, created_at, updated_at`

// CreateSession сохраняет сессию. Существование пользователей не проверяется.
func (s *Storage) CreateSession(ctx context.Context, session models.Session) (*models.Session, error) {
	const op = "storage.postgresql.CreateSession"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if err := storage.ValidateRecord(session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := checkID("id_student", session.StudentID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := checkID("id_tutor", session.TutorID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	session.ID = id
	session.Date = session.Date.UTC().Truncate(time.Microsecond)
	session.CreatedAt = now()
	session.UpdatedAt = session.CreatedAt

	query := `INSERT INTO sessions (` + sessionColumns + `)
			  VALUES (:id, :student_id, :tutor_id, :date, :duration, :comment, :meeting, :canceled, :created_at, :updated_at)`
	if _, err = s.DB.NamedExecContext(ctx, query, session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &session, nil
}

// ListSessions возвращает сессии по фильтру в порядке создания.
func (s *Storage) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	const op = "storage.postgresql.ListSessions"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []models.Session{}, nil
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions`
	var args []any
	if filter.IDs != nil {
		var err error
		query, args, err = sqlx.In(query+` WHERE id IN (?)`, filter.IDs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	query += ` ORDER BY id`

	sessions := []models.Session{}
	if err := s.DB.SelectContext(ctx, &sessions, s.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sessions, nil
}
