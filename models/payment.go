package models

import "time"

// JazzCashTargetNumber is the wallet every simulated transfer is recorded against.
const JazzCashTargetNumber = "0305-2654324"

type PaymentMethod string

const (
	MethodJazzCash PaymentMethod = "jazzcash"
	MethodSadaPay  PaymentMethod = "sadapay"
	MethodNayaPay  PaymentMethod = "nayapay"
	MethodCredit   PaymentMethod = "credit"
	MethodDebit    PaymentMethod = "debit"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodJazzCash, MethodSadaPay, MethodNayaPay, MethodCredit, MethodDebit:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment is a recorded (simulated) transfer, optionally tied to an appointment.
type Payment struct {
	ID                   string              `bson:"id" json:"id"`
	Amount               float64             `bson:"amount" json:"amount"`
	Plan                 Plan                `bson:"plan" json:"plan"`
	Method               PaymentMethod       `bson:"method" json:"method"`
	Name                 string              `bson:"name,omitempty" json:"name,omitempty"`
	Phone                string              `bson:"phone,omitempty" json:"phone,omitempty"`
	TargetJazzCashNumber string              `bson:"targetJazzCashNumber" json:"targetJazzCashNumber"`
	TransactionID        string              `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status               PaymentStatus       `bson:"status" json:"status"`
	AppointmentID        string              `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Appointment          *AppointmentSummary `bson:"appointment,omitempty" json:"appointment,omitempty"` // read-side only, filled by lookup
	CreatedAt            time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// PaymentInput is the payload for recording a payment.
type PaymentInput struct {
	Amount        *float64 `json:"amount"`
	Plan          string   `json:"plan"`
	Method        string   `json:"method"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	TransactionID string   `json:"transactionId"`
	AppointmentID string   `json:"appointmentId"`
}

// PaymentUpdateRequest is the only shape a payment PATCH accepts.
type PaymentUpdateRequest struct {
	Status        *string `json:"status"`
	TransactionID *string `json:"transactionId"`
}
