package models

import "time"

// AppointmentStatus tracks an appointment through the clinic's day.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a booked visit inside the clinic window.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`                       // UUID assigned on insert
	Name          string            `bson:"name" json:"name"`                   // Patient name
	Phone         string            `bson:"phone" json:"phone"`                 // Patient contact number
	PreferredDate string            `bson:"preferredDate" json:"preferredDate"` // Date key in "YYYY-MM-DD" format
	Concern       string            `bson:"concern" json:"concern"`             // Free text, empty when not given
	Plan          *Plan             `bson:"plan" json:"plan"`                   // nil when the patient picked no plan
	PatientNumber int               `bson:"patientNumber" json:"patientNumber"` // 1-based position within PreferredDate
	SlotStart     time.Time         `bson:"slotStart" json:"slotStart"`
	SlotEnd       time.Time         `bson:"slotEnd" json:"slotEnd"`
	Status        AppointmentStatus `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// Summary returns the lightweight view attached to payments.
func (a *Appointment) Summary() *AppointmentSummary {
	return &AppointmentSummary{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		PreferredDate: a.PreferredDate,
		PatientNumber: a.PatientNumber,
	}
}

type AppointmentSummary struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Phone         string `bson:"phone" json:"phone"`
	PreferredDate string `bson:"preferredDate" json:"preferredDate"`
	PatientNumber int    `bson:"patientNumber" json:"patientNumber"`
}

// AppointmentInput is the payload for booking a new appointment.
type AppointmentInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"` // optional, defaults to today
	Concern       string `json:"concern"`
	Plan          string `json:"plan"`
}

// AppointmentUpdateRequest lists the fields a PATCH may touch. Slot fields and
// patientNumber are never updatable.
type AppointmentUpdateRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	PreferredDate *string `json:"preferredDate"`
	Concern       *string `json:"concern"`
	Plan          *string `json:"plan"` // "" clears the plan
	Status        *string `json:"status"`
}
