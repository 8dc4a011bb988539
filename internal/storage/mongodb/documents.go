package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/tutor-booking/internal/models"
)

type userDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Password    string             `bson:"password"`
	Role        models.Role        `bson:"role"`
	Birthdate   time.Time          `bson:"birthdate"`
	Photo       *string            `bson:"photo,omitempty"`
	FreeTimeDay *models.Weekday    `bson:"freetimeday,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d userDoc) model() models.User {
	return models.User{
		ID:          hexOrEmpty(d.ID),
		Name:        d.Name,
		Email:       d.Email,
		Password:    d.Password,
		Role:        d.Role,
		Birthdate:   d.Birthdate.UTC(),
		Photo:       d.Photo,
		FreeTimeDay: d.FreeTimeDay,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type sessionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StudentID primitive.ObjectID `bson:"id_student"`
	TutorID   primitive.ObjectID `bson:"id_tutor"`
	Date      time.Time          `bson:"date"`
	Duration  float64            `bson:"duration"`
	Comment   *string            `bson:"comment,omitempty"`
	Meeting   string             `bson:"meeting"`
	Canceled  bool               `bson:"canceled"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d sessionDoc) model() models.Session {
	return models.Session{
		ID:        hexOrEmpty(d.ID),
		StudentID: hexOrEmpty(d.StudentID),
		TutorID:   hexOrEmpty(d.TutorID),
		Date:      d.Date.UTC(),
		Duration:  d.Duration,
		Comment:   d.Comment,
		Meeting:   d.Meeting,
		Canceled:  d.Canceled,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type reservationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SessionID   primitive.ObjectID `bson:"id_sesion"`
	DateReserve time.Time          `bson:"date_reserve"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d reservationDoc) model() models.Reservation {
	return models.Reservation{
		ID:          hexOrEmpty(d.ID),
		SessionID:   hexOrEmpty(d.SessionID),
		DateReserve: d.DateReserve.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}
