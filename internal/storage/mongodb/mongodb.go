// Package mongodb реализует хранилище на MongoDB: коллекции users, sessions
// и reserves. Идентификаторы — ObjectID, на выходе шестнадцатеричные строки.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/magabrotheeeer/tutor-booking/internal/config"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

const (
	usersCollection        = "users"
	sessionsCollection     = "sessions"
	reservationsCollection = "reserves"

	emailIndexName = "email_unique"
)

// Storage держит клиент MongoDB и выбранную базу.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

// New подключается к MongoDB, проверяет соединение и создаёт индексы.
func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	const op = "storage.mongodb.New"

	opts := options.Client().ApplyURI(cfg.ConnectionString)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxOpenConns))
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{client: client, db: client.Database(cfg.Database)}
	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// ensureIndexes создаёт индексы коллекций. Уникальность email проверяется
// только у документов, где email задан строкой.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	users := s.db.Collection(usersCollection).Indexes()
	_, err := users.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName(emailIndexName).
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create index %s: collection %s already holds duplicate emails: %w",
				emailIndexName, usersCollection, err)
		}
		return fmt.Errorf("create index %s: %w", emailIndexName, err)
	}
	if _, err = users.CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "role", Value: 1}}}); err != nil {
		return fmt.Errorf("create users role index: %w", err)
	}
	_, err = s.db.Collection(reservationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id_sesion", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create reserves id_sesion index: %w", err)
	}
	return nil
}

// Ping проверяет соединение с сервером.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.mongodb.Ping"
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close отключает клиента.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// now возвращает текущее время с точностью BSON datetime.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func parseRef(field, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, storage.Invalid(field, "is not a valid identifier")
	}
	return oid, nil
}

// parseIDs переводит строки в ObjectID. Некорректные строки пропускаются:
// по ним заведомо ничего не найдётся.
func parseIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}

// hexOrEmpty возвращает hex идентификатора или пустую строку для NilObjectID.
func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func mapError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return storage.Violation("duplicate value")
	}
	return err
}

func find[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func contextDone(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
