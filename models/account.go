package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RolePatient      = "patient"
	RoleReceptionist = "receptionist"
)

// Account is a single document type for all four roles. Email is unique
// across the whole collection, enforced by an index on accounts.email.
type Account struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName      string             `json:"fullName" bson:"fullName"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	Role          string             `json:"role" bson:"role"`
	Specialty     string             `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Qualification string             `json:"qualification,omitempty" bson:"qualification,omitempty"`
	Department    string             `json:"department,omitempty" bson:"department,omitempty"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Gender        string             `json:"gender,omitempty" bson:"gender,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RolePatient, RoleReceptionist:
		return true
	}
	return false
}
