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

// CreateSession сохраняет сессию. Существование пользователей не проверяется.
func (s *Storage) CreateSession(ctx context.Context, session models.Session) (*models.Session, error) {
	const op = "storage.mongodb.CreateSession"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if err := storage.ValidateRecord(session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	studentID, err := parseRef("id_student", session.StudentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tutorID, err := parseRef("id_tutor", session.TutorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ts := now()
	doc := sessionDoc{
		ID:        primitive.NewObjectID(),
		StudentID: studentID,
		TutorID:   tutorID,
		Date:      session.Date.UTC().Truncate(time.Millisecond),
		Duration:  session.Duration,
		Comment:   session.Comment,
		Meeting:   session.Meeting,
		Canceled:  session.Canceled,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if _, err = s.db.Collection(sessionsCollection).InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	created := doc.model()
	return &created, nil
}

// ListSessions возвращает сессии по фильтру в порядке создания.
func (s *Storage) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	const op = "storage.mongodb.ListSessions"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.IDs != nil {
		oids := parseIDs(filter.IDs)
		if len(oids) == 0 {
			return []models.Session{}, nil
		}
		query["_id"] = bson.M{"$in": oids}
	}

	docs, err := find[sessionDoc](ctx, s.db.Collection(sessionsCollection), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sessions := make([]models.Session, 0, len(docs))
	for _, d := range docs {
		sessions = append(sessions, d.model())
	}
	return sessions, nil
}
