// Package list реализует HTTP-обработчик выборки сессий вместе со студентом,
// репетитором и резервами каждой сессии.
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

// Service описывает интерфейс бизнес-логики выборки сессий.
type Service interface {
	ListSessions(ctx context.Context) ([]models.SessionDetails, error)
}

// Handler отдаёт агрегированные сессии.
type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список сессий
// @Description Возвращает все сессии, в которых id_student и id_tutor заменены пользователями, а в reservas собраны резервы сессии.
// @Tags Sessions
// @Produce  json
// @Success 200 {array} models.SessionDetails
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /sesiones [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessions, err := h.service.ListSessions(r.Context())
	if err != nil {
		log.Error("failed to list sessions", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list sessions"))
		return
	}

	log.Info("list sessions", slog.Int("count", len(sessions)))
	render.JSON(w, r, sessions)
}
