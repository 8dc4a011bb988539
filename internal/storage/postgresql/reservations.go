package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

const reservationColumns = `id, session_id, date_reserve, created_at, updated_at`

// CreateReservation сохраняет резерв. Существование сессии не проверяется,
// дубликаты на одну сессию допускаются.
func (s *Storage) CreateReservation(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	const op = "storage.postgresql.CreateReservation"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if err := storage.ValidateRecord(reservation); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := checkID("id_sesion", reservation.SessionID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	reservation.ID = id
	reservation.DateReserve = reservation.DateReserve.UTC().Truncate(time.Microsecond)
	reservation.CreatedAt = now()
	reservation.UpdatedAt = reservation.CreatedAt

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES (:id, :session_id, :date_reserve, :created_at, :updated_at)`
	if _, err = s.DB.NamedExecContext(ctx, query, reservation); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &reservation, nil
}

// ListReservations возвращает резервы по фильтру в порядке создания.
// С непустым SessionIDs выполняется один сгруппированный запрос по всем сессиям.
func (s *Storage) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	const op = "storage.postgresql.ListReservations"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if filter.SessionIDs != nil && len(filter.SessionIDs) == 0 {
		return []models.Reservation{}, nil
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	var args []any
	if filter.SessionIDs != nil {
		var err error
		query, args, err = sqlx.In(query+` WHERE session_id IN (?)`, filter.SessionIDs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	query += ` ORDER BY id`

	reservations := []models.Reservation{}
	if err := s.DB.SelectContext(ctx, &reservations, s.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reservations, nil
}
