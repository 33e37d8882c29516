package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
)

type Medicine struct {
	Name      string `json:"name" bson:"name"`
	Dosage    string `json:"dosage" bson:"dosage"`
	Frequency string `json:"frequency" bson:"frequency"`
	Duration  string `json:"duration" bson:"duration"`
}

// Prescription is immutable after create; only the delivery fields are
// updated as the email send progresses.
type Prescription struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID      string             `json:"patientId" bson:"patientId"`
	DoctorID       string             `json:"doctorId" bson:"doctorId"`
	Diagnosis      string             `json:"diagnosis" bson:"diagnosis"`
	Medicines      []Medicine         `json:"medicines" bson:"medicines"`
	Advice         string             `json:"advice,omitempty" bson:"advice,omitempty"`
	IssuedAt       time.Time          `json:"issuedAt" bson:"issuedAt"`
	DeliveryStatus string             `json:"deliveryStatus" bson:"deliveryStatus"`
	DeliveryError  string             `json:"deliveryError,omitempty" bson:"deliveryError,omitempty"`
	DeliveredAt    *time.Time         `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
