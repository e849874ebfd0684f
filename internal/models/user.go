package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account record. Role is empty for regular users and "admin"
// for administrators; it is only ever set through the admin-promotion flow.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name" json:"name"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Password string             `bson:"password,omitempty" json:"-"` // Hide from JSON responses
}

// IsAdmin reports whether the stored record carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
