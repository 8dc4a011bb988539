// Package create реализует HTTP-обработчик создания резерва на сессию.
//
// Handler принимает JSON с id_sesion и date_reserve, проверяет обязательные поля,
// передаёт запрос сервису и возвращает созданную запись.
// Ошибки валидации отдаются со статусом 500 и текстом нарушения.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-booking/internal/http/response"
	"github.com/magabrotheeeer/tutor-booking/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-booking/internal/lib/validate"
	"github.com/magabrotheeeer/tutor-booking/internal/models"
	"github.com/magabrotheeeer/tutor-booking/internal/storage"
)

// Handler управляет HTTP-запросами на создание резервов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики бронирования
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания резерва.
type Service interface {
	CreateReservation(ctx context.Context, req models.DummyReservation) (*models.Reservation, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать резерв
// @Description Создает резерв на сессию. Существование сессии не проверяется, повторные резервы допускаются.
// @Tags Reservations
// @Accept  json
// @Produce  json
// @Param request body models.DummyReservation true "Данные резерва"
// @Success 200 {object} models.Reservation "Созданный резерв"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка валидации или хранилища"
// @Router /reservas [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reservation.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyReservation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			render.JSON(w, r, response.ValidationError(errs))
			return
		}
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), req)
	if err != nil {
		log.Error("failed to create reservation", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			render.JSON(w, r, response.Error(verr.Reason))
			return
		}
		render.JSON(w, r, response.Error("could not create reservation"))
		return
	}

	log.Info("reservation created", slog.String("id", reservation.ID))
	render.JSON(w, r, reservation)
}
