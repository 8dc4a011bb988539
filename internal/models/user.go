// Package models содержит доменные структуры сервиса бронирования занятий:
// пользователей, сессии с репетитором и резервы на эти сессии,
// а также фильтры выборки и представления с разрешёнными ссылками.
package models

import "time"

// Role — роль пользователя. Допустимы только значения из констант ниже.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
)

// Valid сообщает, входит ли роль в закрытый набор значений.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTutor, RoleStudent:
		return true
	}
	return false
}

// Weekday — предпочитаемый свободный день недели (только будни).
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// Valid сообщает, является ли значение рабочим днём недели.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// User представляет пользователя системы: студента, репетитора или администратора.
// Пароль хранится как непрозрачная строка и никогда не попадает в JSON-ответы.
type User struct {
	ID          string    `json:"_id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email" validate:"required,email"`
	Password    string    `json:"-" db:"password"`
	Role        Role      `json:"role" db:"role" validate:"required,oneof=admin tutor student"`
	Birthdate   time.Time `json:"birthdate" db:"birthdate" validate:"required"`
	Photo       *string   `json:"photo,omitempty" db:"photo"`
	FreeTimeDay *Weekday  `json:"freetimeday,omitempty" db:"freetimeday" validate:"omitempty,oneof=monday tuesday wednesday thursday friday"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// UserFilter задаёт условия выборки пользователей.
// Пустая роль не ограничивает выборку. IDs == nil означает "без фильтра",
// пустой непустой срез — заведомо пустой результат.
type UserFilter struct {
	Role Role
	IDs  []string
}
