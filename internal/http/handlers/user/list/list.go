// Package list реализует HTTP-обработчик выборки пользователей с заданной ролью.
// Один и тот же обработчик обслуживает /estudiantes и /tutores.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tutor-booking/internal/http/response"
	"github.com/magabrotheeeer/tutor-booking/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-booking/internal/models"
)

// Service описывает интерфейс бизнес-логики выборки пользователей.
type Service interface {
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

// Handler отдаёт пользователей одной роли.
type Handler struct {
	log     *slog.Logger
	service Service
	role    models.Role
}

// New создает Handler для пользователей с ролью role.
func New(log *slog.Logger, service Service, role models.Role) *Handler {
	return &Handler{
		log:     log,
		service: service,
		role:    role,
	}
}

// ServeHTTP godoc
// @Summary Список пользователей по роли
// @Description /estudiantes возвращает студентов, /tutores возвращает репетиторов. Порядок соответствует порядку создания.
// @Tags Users
// @Produce  json
// @Success 200 {array} models.User
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /estudiantes [get]
// @Router /tutores [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("role", string(h.role)),
	)

	users, err := h.service.ListUsersByRole(r.Context(), h.role)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}

	log.Info("list users", slog.Int("count", len(users)))
	render.JSON(w, r, users)
}
