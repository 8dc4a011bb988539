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

// CreateUser сохраняет пользователя. Уникальность email обеспечивает индекс.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.mongodb.CreateUser"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}
	if err := storage.ValidateRecord(user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ts := now()
	doc := userDoc{
		ID:          primitive.NewObjectID(),
		Name:        user.Name,
		Email:       user.Email,
		Password:    user.Password,
		Role:        user.Role,
		Birthdate:   user.Birthdate.UTC().Truncate(time.Millisecond),
		Photo:       user.Photo,
		FreeTimeDay: user.FreeTimeDay,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if _, err := s.db.Collection(usersCollection).InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	created := doc.model()
	return &created, nil
}

// ListUsers возвращает пользователей по фильтру в порядке создания.
func (s *Storage) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	const op = "storage.mongodb.ListUsers"
	if err := contextDone(ctx, op); err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.IDs != nil {
		oids := parseIDs(filter.IDs)
		if len(oids) == 0 {
			return []models.User{}, nil
		}
		query["_id"] = bson.M{"$in": oids}
	}

	docs, err := find[userDoc](ctx, s.db.Collection(usersCollection), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.model())
	}
	return users, nil
}
