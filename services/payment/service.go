package payment

import (
	"context"
	"errors"
	"math"
	"strings"

	"ziaclinic/models"
	"ziaclinic/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultPaymentService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// CreatePayment validates input, checks the optional appointment reference
// and records the payment as pending.
func (s *DefaultPaymentService) CreatePayment(ctx context.Context, input models.PaymentInput) (*models.Payment, error) {
	plan := models.Plan(strings.TrimSpace(input.Plan))
	method := models.PaymentMethod(strings.TrimSpace(input.Method))
	if input.Amount == nil || plan == "" || method == "" {
		return nil, utils.NewValidationError("amount, plan and method are required")
	}
	amount := *input.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, utils.NewValidationError("amount must be a non-negative number")
	}
	if !plan.Valid() {
		return nil, utils.NewValidationError("Invalid plan value")
	}
	if !method.Valid() {
		return nil, utils.NewValidationError("Unsupported payment method")
	}

	var appt *models.Appointment
	appointmentID := strings.TrimSpace(input.AppointmentID)
	if appointmentID != "" {
		found, err := s.Appointments.GetByID(ctx, appointmentID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &utils.NotFoundError{Resource: "Appointment", ID: appointmentID}
		}
		if err != nil {
			return nil, err
		}
		appt = found
	}

	payment := &models.Payment{
		Amount:               amount,
		Plan:                 plan,
		Method:               method,
		Name:                 strings.TrimSpace(input.Name),
		Phone:                strings.TrimSpace(input.Phone),
		TargetJazzCashNumber: models.JazzCashTargetNumber,
		TransactionID:        strings.TrimSpace(input.TransactionID),
		Status:               models.PaymentPending,
		AppointmentID:        appointmentID,
	}
	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	if appt != nil {
		payment.Appointment = appt.Summary()
	}

	s.logger().Info("Payment recorded",
		zap.String("id", payment.ID),
		zap.String("method", string(method)),
		zap.Float64("amount", amount),
		zap.String("appointmentId", appointmentID),
	)
	return payment, nil
}

func (s *DefaultPaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return payment, nil
}

func (s *DefaultPaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.Repo.GetAll(ctx)
}

// UpdatePayment changes only status and transactionId. The status is checked
// before the payment is looked up.
func (s *DefaultPaymentService) UpdatePayment(ctx context.Context, id string, req models.PaymentUpdateRequest) (*models.Payment, error) {
	// Empty values are treated as absent, so a PATCH cannot blank either field.
	fields := bson.M{}
	if req.Status != nil {
		if status := models.PaymentStatus(strings.TrimSpace(*req.Status)); status != "" {
			if !status.Valid() {
				return nil, utils.NewValidationError("Invalid status value")
			}
			fields["status"] = status
		}
	}
	if req.TransactionID != nil {
		if txID := strings.TrimSpace(*req.TransactionID); txID != "" {
			fields["transactionId"] = txID
		}
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateSetDocument(ctx, id, fields); err != nil {
			return nil, notFound(err, id)
		}
		s.logger().Info("Payment updated", zap.String("id", id), zap.Any("status", fields["status"]))
	}
	return s.GetPayment(ctx, id)
}

func (s *DefaultPaymentService) DeletePayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	s.logger().Info("Payment deleted", zap.String("id", id))
	return payment, nil
}

func notFound(err error, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &utils.NotFoundError{Resource: "Payment", ID: id}
	}
	return err
}
