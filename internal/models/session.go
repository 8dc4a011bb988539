package models

import "time"

// Session — занятие между студентом и репетитором.
// StudentID и TutorID ссылаются на пользователей, но целостность ссылок
// хранилищем не гарантируется.
type Session struct {
	ID        string    `json:"_id" db:"id"`
	StudentID string    `json:"id_student" db:"student_id" validate:"required"`
	TutorID   string    `json:"id_tutor" db:"tutor_id" validate:"required"`
	Date      time.Time `json:"date" db:"date" validate:"required"`
	Duration  float64   `json:"duration" db:"duration"` // минуты
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	Meeting   string    `json:"meeting" db:"meeting" validate:"required"`
	Canceled  bool      `json:"canceled" db:"canceled"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// SessionFilter задаёт условия выборки сессий. Семантика IDs как в UserFilter.
type SessionFilter struct {
	IDs []string
}

// SessionDetails — денормализованное представление сессии:
// ссылки на студента и репетитора заменены записями пользователей
// (nil, если пользователь не найден), к сессии приложены её резервы.
type SessionDetails struct {
	ID           string               `json:"_id"`
	Student      *User                `json:"id_student"`
	Tutor        *User                `json:"id_tutor"`
	Date         time.Time            `json:"date"`
	Duration     float64              `json:"duration"`
	Comment      *string              `json:"comment,omitempty"`
	Meeting      string               `json:"meeting"`
	Canceled     bool                 `json:"canceled"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Reservations []ReservationDetails `json:"reservas"`
}
