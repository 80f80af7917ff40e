package appointment

import (
	"context"
	"time"

	appointmentRepo "ziaclinic/database/repository/appointment"
	"ziaclinic/models"
	"ziaclinic/services/scheduler"

	"go.uber.org/zap"
)

// AppointmentService books and manages appointments inside the clinic window.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req models.AppointmentUpdateRequest) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo   appointmentRepo.AppointmentRepository
	Window scheduler.Window
	// Locker serialises count+insert per date. Nil means no locking.
	Locker SlotLocker
	// Clock supplies "now" for defaulting the date; nil means time.Now.
	Clock  func() time.Time
	Logger *zap.Logger
}

// NewAppointmentService wires a service over repo using the clinic's fixed
// window in loc.
func NewAppointmentService(repo appointmentRepo.AppointmentRepository, loc *time.Location, locker SlotLocker, logger *zap.Logger) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:   repo,
		Window: scheduler.DefaultWindow(loc),
		Locker: locker,
		Logger: logger,
	}
}
