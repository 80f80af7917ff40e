package payment

import (
	"context"

	paymentRepo "ziaclinic/database/repository/payment"
	"ziaclinic/models"

	"go.uber.org/zap"
)

// PaymentService records simulated payments. No money moves; a payment is a
// ledger entry against the clinic's JazzCash wallet.
type PaymentService interface {
	CreatePayment(ctx context.Context, input models.PaymentInput) (*models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, id string, req models.PaymentUpdateRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) (*models.Payment, error)
}

// AppointmentLookup resolves the appointment a payment refers to.
type AppointmentLookup interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo         paymentRepo.PaymentRepository
	Appointments AppointmentLookup
	Logger       *zap.Logger
}

func NewPaymentService(repo paymentRepo.PaymentRepository, appointments AppointmentLookup, logger *zap.Logger) *DefaultPaymentService {
	return &DefaultPaymentService{Repo: repo, Appointments: appointments, Logger: logger}
}
