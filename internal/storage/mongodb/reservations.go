package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

// CreateReservation сохраняет резерв. Существование сессии не проверяется.
func (s *Storage) CreateReservation(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	const op = "storage.mongodb.CreateReservation"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if err := storage.ValidateRecord(reservation); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sessionID, err := parseRef("id_sesion", reservation.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ts := now()
	doc := reservationDoc{
		ID:          primitive.NewObjectID(),
		SessionID:   sessionID,
		DateReserve: reservation.DateReserve.UTC().Truncate(time.Millisecond),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if _, err = s.db.Collection(reservationsCollection).InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	created := doc.model()
	return &created, nil
}

// ListReservations возвращает резервы по фильтру в порядке создания.
// С непустым SessionIDs выполняется один запрос с $in по всем сессиям.
func (s *Storage) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	const op = "storage.mongodb.ListReservations"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.SessionIDs != nil {
		oids := parseIDs(filter.SessionIDs)
		if len(oids) == 0 {
			return []models.Reservation{}, nil
		}
		query["id_sesion"] = bson.M{"$in": oids}
	}

	docs, err := find[reservationDoc](ctx, s.db.Collection(reservationsCollection), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	reservations := make([]models.Reservation, 0, len(docs))
	for _, d := range docs {
		reservations = append(reservations, d.model())
	}
	return reservations, nil
}
