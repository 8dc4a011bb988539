// Package list реализует HTTP-обработчик выборки резервов.
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

// Service описывает интерфейс бизнес-логики выборки резервов.
type Service interface {
	ListReservations(ctx context.Context) ([]models.ReservationDetails, error)
}

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
// @Summary Список резервов
// @Description Возвращает все резервы; id_sesion заменён сессией или null, если сессия не найдена.
// @Tags Reservations
// @Produce  json
// @Success 200 {array} models.ReservationDetails
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /reservas [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reservation.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	reservations, err := h.service.ListReservations(r.Context())
	if err != nil {
		log.Error("failed to list reservations", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list reservations"))
		return
	}

	log.Info("list reservations", slog.Int("count", len(reservations)))
	render.JSON(w, r, reservations)
}
