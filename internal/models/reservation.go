package models

import "time"

// Reservation — резерв на сессию. Несколько резервов могут ссылаться
// на одну сессию, дубликаты не отклоняются.
type Reservation struct {
	ID          string    `json:"_id" db:"id"`
	SessionID   string    `json:"id_sesion" db:"session_id" validate:"required"`
	DateReserve time.Time `json:"date_reserve" db:"date_reserve" validate:"required"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ReservationFilter задаёт условия выборки резервов. Семантика SessionIDs как в UserFilter.
type ReservationFilter struct {
	SessionIDs []string
}

// ReservationDetails — резерв, у которого ссылка на сессию заменена
// самой сессией (nil, если сессия не найдена).
type ReservationDetails struct {
	ID          string    `json:"_id"`
	Session     *Session  `json:"id_sesion"`
	DateReserve time.Time `json:"date_reserve"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DummyReservation используется для приёма данных из JSON-запроса.
// Дата приходит строкой в формате RFC 3339 и разбирается в сервисе.
type DummyReservation struct {
	SessionID   string `json:"id_sesion" validate:"required"`    // Идентификатор сессии
	DateReserve string `json:"date_reserve" validate:"required"` // Дата резерва, например 2023-02-24T00:00:00.000Z
}
