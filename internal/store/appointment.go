package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/doctors-portal-api/internal/models"
)

// AppointmentsByOwner lists a patient's appointments for one date.
func (s *Store) AppointmentsByOwner(ctx context.Context, email, date string) ([]models.Appointment, error) {
	cursor, err := s.appointments.Find(ctx, Eq("email", email).And("date", date).Doc())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	return appointments, nil
}

// AppointmentByID fetches a single appointment. A missing record is not an
// error: the result is simply nil.
func (s *Store) AppointmentByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var apt models.Appointment
	err := s.appointments.FindOne(ctx, Eq("_id", id).Doc()).Decode(&apt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

// CreateAppointment inserts a booking and fills in the generated id.
func (s *Store) CreateAppointment(ctx context.Context, apt *models.Appointment) error {
	if apt.ID.IsZero() {
		apt.ID = primitive.NewObjectID()
	}
	_, err := s.appointments.InsertOne(ctx, apt)
	return err
}

// AttachPayment sets the payment subdocument on an existing appointment.
func (s *Store) AttachPayment(ctx context.Context, id primitive.ObjectID, payment models.Payment) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"payment": payment}}
	return s.appointments.UpdateOne(ctx, Eq("_id", id).Doc(), update)
}
