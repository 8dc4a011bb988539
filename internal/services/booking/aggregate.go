package booking

import "github.com/magabrotheeeer/tutor-booking/internal/models"

// AggregateSessions собирает денормализованные сессии: подставляет
// пользователей по ссылкам и прикладывает резервы каждой сессии.
// Порядок результата совпадает с порядком sessions. Резервы на
// отсутствующие сессии отбрасываются, сессия без резервов получает пустой срез.
func AggregateSessions(sessions []models.Session, users []models.User, reservations []models.Reservation) []models.SessionDetails {
	usersByID := make(map[string]*models.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}

	sessionsByID := make(map[string]*models.Session, len(sessions))
	for i := range sessions {
		sessionsByID[sessions[i].ID] = &sessions[i]
	}

	bySession := make(map[string][]models.ReservationDetails, len(sessions))
	for _, r := range reservations {
		session, ok := sessionsByID[r.SessionID]
		if !ok {
			continue
		}
		bySession[r.SessionID] = append(bySession[r.SessionID], reservationDetails(r, session))
	}

	result := make([]models.SessionDetails, 0, len(sessions))
	for _, s := range sessions {
		attached := bySession[s.ID]
		if attached == nil {
			attached = []models.ReservationDetails{}
		}
		result = append(result, models.SessionDetails{
			ID:           s.ID,
			Student:      usersByID[s.StudentID],
			Tutor:        usersByID[s.TutorID],
			Date:         s.Date,
			Duration:     s.Duration,
			Comment:      s.Comment,
			Meeting:      s.Meeting,
			Canceled:     s.Canceled,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
			Reservations: attached,
		})
	}
	return result
}

// ResolveReservations подставляет сессии в резервы; отсутствующая сессия даёт nil.
func ResolveReservations(reservations []models.Reservation, sessions []models.Session) []models.ReservationDetails {
	sessionsByID := make(map[string]*models.Session, len(sessions))
	for i := range sessions {
		sessionsByID[sessions[i].ID] = &sessions[i]
	}

	result := make([]models.ReservationDetails, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, reservationDetails(r, sessionsByID[r.SessionID]))
	}
	return result
}

func reservationDetails(r models.Reservation, session *models.Session) models.ReservationDetails {
	return models.ReservationDetails{
		ID:          r.ID,
		Session:     session,
		DateReserve: r.DateReserve,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// sessionRefs возвращает идентификаторы сессий и уникальные идентификаторы
// упомянутых в них пользователей.
func sessionRefs(sessions []models.Session) (sessionIDs, userIDs []string) {
	sessionIDs = make([]string, 0, len(sessions))
	userIDs = make([]string, 0, 2*len(sessions))
	seen := make(map[string]struct{}, 2*len(sessions))
	for _, s := range sessions {
		sessionIDs = append(sessionIDs, s.ID)
		for _, id := range [...]string{s.StudentID, s.TutorID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			userIDs = append(userIDs, id)
		}
	}
	return sessionIDs, userIDs
}

func uniqueSessionIDs(reservations []models.Reservation) []string {
	ids := make([]string, 0, len(reservations))
	seen := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		if _, ok := seen[r.SessionID]; ok {
			continue
		}
		seen[r.SessionID] = struct{}{}
		ids = append(ids, r.SessionID)
	}
	return ids
}
