package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment is a booked slot, owned by the patient identified by Email.
// Email+Date is the listing key; ID is the key for payment updates.
type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Date        string             `bson:"date" json:"date"`
	Treatment   string             `bson:"treatment" json:"treatment"`
	Time        string             `bson:"time" json:"time"`
	PatientName string             `bson:"patientName" json:"patientName"`
	Phone       string             `bson:"phone" json:"phone"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Payment     *Payment           `bson:"payment,omitempty" json:"payment,omitempty"`
}

// Payment is attached to an appointment after a successful charge.
type Payment struct {
	TransactionID string  `bson:"transactionId" json:"transactionId"`
	Amount        float64 `bson:"amount" json:"amount"`
	Last4         string  `bson:"last4,omitempty" json:"last4,omitempty"`
	Created       int64   `bson:"created" json:"created"`
}
