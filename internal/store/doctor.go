package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doctors-portal/doctors-portal-api/internal/models"
)

// Doctors lists every doctor profile.
func (s *Store) Doctors(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := s.doctors.Find(ctx, All().Doc())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}
	return doctors, nil
}

// CreateDoctor inserts a doctor profile with its image bytes stored verbatim.
func (s *Store) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	_, err := s.doctors.InsertOne(ctx, doctor)
	return err
}
