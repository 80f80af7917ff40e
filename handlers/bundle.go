// File: handlers/bundle.go
package handlers

import (
	"ziaclinic/services/appointment"
	"ziaclinic/services/payment"
	"ziaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Appointment endpoints
	ListAppointmentsHandler       gin.HandlerFunc
	ListAppointmentsByDateHandler gin.HandlerFunc
	GetAppointmentHandler         gin.HandlerFunc
	CreateAppointmentHandler      gin.HandlerFunc
	UpdateAppointmentHandler      gin.HandlerFunc
	DeleteAppointmentHandler      gin.HandlerFunc

	// Payment endpoints
	ListPaymentsHandler  gin.HandlerFunc
	GetPaymentHandler    gin.HandlerFunc
	CreatePaymentHandler gin.HandlerFunc
	UpdatePaymentHandler gin.HandlerFunc
	DeletePaymentHandler gin.HandlerFunc

	// Liveness endpoints
	RootHandler        gin.HandlerFunc
	HealthCheckHandler gin.HandlerFunc
	FaviconHandler     gin.HandlerFunc
}

// NewHandlerBundle binds every endpoint to its service.
func NewHandlerBundle(
	appointments appointment.AppointmentService,
	payments payment.PaymentService,
	monitor *utils.HealthMonitor,
	logger *zap.Logger,
) *HandlerBundle {
	ah := &AppointmentHandler{Service: appointments, Logger: logger}
	ph := &PaymentHandler{Service: payments, Logger: logger}
	hh := &HealthHandler{Monitor: monitor}

	return &HandlerBundle{
		ListAppointmentsHandler:       ah.ListAppointmentsHandler,
		ListAppointmentsByDateHandler: ah.ListAppointmentsByDateHandler,
		GetAppointmentHandler:         ah.GetAppointmentHandler,
		CreateAppointmentHandler:      ah.CreateAppointmentHandler,
		UpdateAppointmentHandler:      ah.UpdateAppointmentHandler,
		DeleteAppointmentHandler:      ah.DeleteAppointmentHandler,

		ListPaymentsHandler:  ph.ListPaymentsHandler,
		GetPaymentHandler:    ph.GetPaymentHandler,
		CreatePaymentHandler: ph.CreatePaymentHandler,
		UpdatePaymentHandler: ph.UpdatePaymentHandler,
		DeletePaymentHandler: ph.DeletePaymentHandler,

		RootHandler:        hh.RootHandler,
		HealthCheckHandler: hh.HealthCheckHandler,
		FaviconHandler:     hh.FaviconHandler,
	}
}
