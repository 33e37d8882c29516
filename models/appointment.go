package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID       string             `json:"patientId" bson:"patientId"`
	DoctorID        string             `json:"doctorId" bson:"doctorId"`
	Date            string             `json:"date" bson:"date"`
	Time            string             `json:"time" bson:"time"`
	AppointmentDate time.Time          `json:"appointmentDate" bson:"appointmentDate"`
	Status          string             `json:"status" bson:"status"`
	Service         string             `json:"service" bson:"service"`
	Fee             float64            `json:"fee" bson:"fee"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Diagnosis       string             `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Prescription    string             `json:"prescription,omitempty" bson:"prescription,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AppointmentView is an appointment joined with participant display fields
// for the dashboard listing.
type AppointmentView struct {
	Appointment      `bson:",inline"`
	PatientName      string `json:"patientName"`
	PatientEmail     string `json:"patientEmail"`
	PatientPhone     string `json:"patientPhone"`
	DoctorName       string `json:"doctorName"`
	DoctorEmail      string `json:"doctorEmail"`
	DoctorDepartment string `json:"doctorDepartment"`
}

func ValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}
