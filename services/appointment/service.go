package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"ziaclinic/models"
	"ziaclinic/services/scheduler"
	"ziaclinic/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const resourceName = "Appointment"

func (s *DefaultAppointmentService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultAppointmentService) locker() SlotLocker {
	if s.Locker != nil {
		return s.Locker
	}
	return NoopLocker{}
}

// CreateAppointment validates input, allocates the next free slot on the
// requested date and stores the booking as pending.
func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return nil, utils.NewValidationError("Name and phone are required")
	}
	plan, err := parsePlan(input.Plan)
	if err != nil {
		return nil, err
	}

	dateKey := scheduler.DateKey(input.PreferredDate, s.now(), s.Window.Location)
	if _, err := scheduler.ParseDateKey(dateKey, s.Window.Location); err != nil {
		return nil, utils.NewValidationError("preferredDate must be in YYYY-MM-DD format")
	}

	release, err := s.locker().Lock(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	defer release()

	booked, err := s.Repo.CountByDate(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	slot, err := s.Window.NextSlot(dateKey, booked)
	if errors.Is(err, scheduler.ErrSlotsExhausted) {
		s.logger().Info("Clinic window full", zap.String("date", dateKey), zap.Int64("booked", booked))
		return nil, &utils.CapacityError{Message: "No slots available between " + s.Window.Label()}
	}
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		Name:          name,
		Phone:         phone,
		PreferredDate: dateKey,
		Concern:       strings.TrimSpace(input.Concern),
		Plan:          plan,
		PatientNumber: slot.PatientNumber,
		SlotStart:     slot.Start.UTC(),
		SlotEnd:       slot.End.UTC(),
		Status:        models.AppointmentPending,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.logger().Info("Appointment booked",
		zap.String("id", appt.ID),
		zap.String("date", dateKey),
		zap.Int("patientNumber", appt.PatientNumber),
	)
	return appt, nil
}

func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.GetAll(ctx)
}

// ListAppointmentsByDate matches date verbatim; an unknown or malformed key
// simply matches nothing.
func (s *DefaultAppointmentService) ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return s.Repo.GetByDate(ctx, strings.TrimSpace(date))
}

// UpdateAppointment merges the whitelisted fields of req. The slot and the
// patient number stay as allocated, even when preferredDate changes.
func (s *DefaultAppointmentService) UpdateAppointment(ctx context.Context, id string, req models.AppointmentUpdateRequest) (*models.Appointment, error) {
	fields, err := updateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return s.GetAppointment(ctx, id)
	}

	appt, err := s.Repo.UpdateSetDocument(ctx, id, fields)
	if err != nil {
		return nil, notFound(err, id)
	}
	s.logger().Info("Appointment updated", zap.String("id", id), zap.Int("fields", len(fields)))
	return appt, nil
}

func (s *DefaultAppointmentService) DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	s.logger().Info("Appointment deleted", zap.String("id", id), zap.String("date", appt.PreferredDate))
	return appt, nil
}

// updateFields validates req and translates it into a $set document.
func updateFields(req models.AppointmentUpdateRequest) (bson.M, error) {
	fields := bson.M{}

	if req.Status != nil {
		status := models.AppointmentStatus(strings.TrimSpace(*req.Status))
		if !status.Valid() {
			return nil, utils.NewValidationError("Invalid status value")
		}
		fields["status"] = status
	}
	if req.Plan != nil {
		plan, err := parsePlan(*req.Plan)
		if err != nil {
			return nil, err
		}
		fields["plan"] = plan
	}
	if req.PreferredDate != nil {
		date := strings.TrimSpace(*req.PreferredDate)
		if _, err := time.Parse(scheduler.DateLayout, date); err != nil {
			return nil, utils.NewValidationError("preferredDate must be in YYYY-MM-DD format")
		}
		fields["preferredDate"] = date
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, utils.NewValidationError("Name and phone are required")
		}
		fields["name"] = name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			return nil, utils.NewValidationError("Name and phone are required")
		}
		fields["phone"] = phone
	}
	if req.Concern != nil {
		fields["concern"] = strings.TrimSpace(*req.Concern)
	}
	return fields, nil
}

// parsePlan maps blank input to "no plan".
func parsePlan(raw string) (*models.Plan, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	plan := models.Plan(raw)
	if !plan.Valid() {
		return nil, utils.NewValidationError("Invalid plan value")
	}
	return &plan, nil
}

func notFound(err error, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &utils.NotFoundError{Resource: resourceName, ID: id}
	}
	return err
}
