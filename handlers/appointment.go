package handlers

import (
	"net/http"

	"ziaclinic/models"
	"ziaclinic/services/appointment"
	"ziaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves /api/appointments.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

// ListAppointmentsHandler handles GET /api/appointments.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	list, err := h.Service.ListAppointments(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// ListAppointmentsByDateHandler handles GET /api/appointments/date/:date.
func (h *AppointmentHandler) ListAppointmentsByDateHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	date := c.Param("date")
	list, err := h.Service.ListAppointmentsByDate(c.Request.Context(), date)
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to fetch appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	appt, err := h.Service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to fetch appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": appt})
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.AppointmentInput
	if err := bindJSON(c, &input); err != nil {
		logger.Warn("Invalid appointment payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	appt, err := h.Service.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": appt})
}

// UpdateAppointmentHandler handles PATCH /api/appointments/:id.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req models.AppointmentUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Warn("Invalid appointment update payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	appt, err := h.Service.UpdateAppointment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": appt})
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	appt, err := h.Service.DeleteAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted", "data": appt})
}
