// Package booking содержит бизнес-логику сервиса бронирования:
// выборки пользователей по роли, сборку сессий с резервами и создание резервов.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/magabrotheeeer/tutor-booking/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

// dateLayouts — принимаемые формы даты ISO 8601. Время без смещения считается UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

const (
	sessionsCacheKey    = "sessions:aggregated"
	sessionsVersionKey  = "sessions:version"
	usersCacheKeyPrefix = "users:role:"
)

// Repository определяет операции хранилища, нужные сервису.
type Repository interface {
	// CreateReservation сохраняет резерв и возвращает созданную запись.
	CreateReservation(ctx context.Context, reservation models.Reservation) (*models.Reservation, error)
	// ListUsers возвращает пользователей по фильтру в порядке создания.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// ListSessions возвращает сессии по фильтру в порядке создания.
	ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error)
	// ListReservations возвращает резервы по фильтру в порядке создания.
	ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
}

// Cache описывает методы для кеширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	Version(ctx context.Context, versionKey string) (int64, error)
	Bump(ctx context.Context, versionKey string) error
	SetIfVersion(ctx context.Context, key string, value any, expiration time.Duration, versionKey string, version int64) (bool, error)
}

// Metrics учитывает события сервиса.
type Metrics interface {
	RecordReservationCreated()
	RecordCacheHit()
	RecordCacheMiss()
}

// Service реализует бизнес-логику бронирования.
type Service struct {
	repo     Repository
	cache    Cache
	metrics  Metrics
	cacheTTL time.Duration
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, metrics Metrics, cacheTTL time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		metrics:  metrics,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// ListUsersByRole возвращает пользователей с указанной ролью.
func (s *Service) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	const op = "services.booking.ListUsersByRole"
	if !role.Valid() {
		return nil, fmt.Errorf("%s: %w", op, storage.Invalid("role", "is not a known role"))
	}

	cacheKey := usersCacheKeyPrefix + string(role)
	var users []models.User
	if s.fromCache(ctx, cacheKey, &users) {
		return users, nil
	}

	users, err := s.repo.ListUsers(ctx, models.UserFilter{Role: role})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if users == nil {
		users = []models.User{}
	}
	s.toCache(ctx, cacheKey, users)
	return users, nil
}

// ListSessions возвращает все сессии с подставленными студентом и репетитором
// и приложенными резервами, в порядке выборки сессий.
//
// Вместо запроса резервов на каждую сессию выполняется один сгруппированный
// запрос; пользователи и резервы запрашиваются параллельно. Любая ошибка
// хранилища прерывает весь запрос.
//
// Результат попадает в кеш, только если за время выборки не был создан
// ни один резерв (счётчик sessionsVersionKey не изменился).
func (s *Service) ListSessions(ctx context.Context) ([]models.SessionDetails, error) {
	const op = "services.booking.ListSessions"

	var result []models.SessionDetails
	if s.fromCache(ctx, sessionsCacheKey, &result) {
		return result, nil
	}
	version, versionErr := s.cache.Version(ctx, sessionsVersionKey)
	if versionErr != nil {
		s.log.Warn("failed to read cache version", slog.String("key", sessionsVersionKey), sl.Err(versionErr))
	}

	sessions, err := s.repo.ListSessions(ctx, models.SessionFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(sessions) == 0 {
		result = []models.SessionDetails{}
		if versionErr == nil {
			s.toCacheIfVersion(ctx, sessionsCacheKey, result, sessionsVersionKey, version)
		}
		return result, nil
	}

	sessionIDs, userIDs := sessionRefs(sessions)

	var (
		users        []models.User
		reservations []models.Reservation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.repo.ListUsers(gctx, models.UserFilter{IDs: userIDs})
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.repo.ListReservations(gctx, models.ReservationFilter{SessionIDs: sessionIDs})
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result = AggregateSessions(sessions, users, reservations)
	if versionErr == nil {
		s.toCacheIfVersion(ctx, sessionsCacheKey, result, sessionsVersionKey, version)
	}
	return result, nil
}

// ListReservations возвращает все резервы с подставленной сессией.
func (s *Service) ListReservations(ctx context.Context) ([]models.ReservationDetails, error) {
	const op = "services.booking.ListReservations"

	reservations, err := s.repo.ListReservations(ctx, models.ReservationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(reservations) == 0 {
		return []models.ReservationDetails{}, nil
	}

	sessions, err := s.repo.ListSessions(ctx, models.SessionFilter{IDs: uniqueSessionIDs(reservations)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ResolveReservations(reservations, sessions), nil
}

// CreateReservation разбирает запрос, сохраняет резерв и сбрасывает кеш сессий.
// Версия кеша увеличивается до удаления ключа, поэтому выборка, начатая
// до создания резерва, не вернёт устаревший результат в кеш.
func (s *Service) CreateReservation(ctx context.Context, req models.DummyReservation) (*models.Reservation, error) {
	const op = "services.booking.CreateReservation"

	dateReserve, err := parseDate(req.DateReserve)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.Invalid("date_reserve", "must be an ISO-8601 timestamp"))
	}

	reservation, err := s.repo.CreateReservation(ctx, models.Reservation{
		SessionID:   req.SessionID,
		DateReserve: dateReserve,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new reservation",
		slog.String("id", reservation.ID),
		slog.String("session_id", reservation.SessionID))
	s.metrics.RecordReservationCreated()

	if err := s.cache.Bump(ctx, sessionsVersionKey); err != nil {
		s.log.Warn("failed to bump cache version", slog.String("key", sessionsVersionKey), sl.Err(err))
	}
	if err := s.cache.Invalidate(ctx, sessionsCacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", sessionsCacheKey), sl.Err(err))
	}
	return reservation, nil
}

func (s *Service) fromCache(ctx context.Context, key string, result any) bool {
	found, err := s.cache.Get(ctx, key, result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
		return false
	}
	if found {
		s.metrics.RecordCacheHit()
	} else {
		s.metrics.RecordCacheMiss()
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
}

func (s *Service) toCacheIfVersion(ctx context.Context, key string, value any, versionKey string, version int64) {
	stored, err := s.cache.SetIfVersion(ctx, key, value, s.cacheTTL, versionKey, version)
	if err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
		return
	}
	if !stored {
		s.log.Debug("cache version changed, result not cached", slog.String("key", key))
	}
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
