package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a staff profile. Image holds the uploaded picture verbatim;
// mongo persists it as a binary field and JSON encodes it as base64.
type Doctor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image []byte             `bson:"image" json:"image"`
}
