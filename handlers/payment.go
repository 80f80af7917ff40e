package handlers

import (
	"net/http"

	"ziaclinic/models"
	"ziaclinic/services/payment"
	"ziaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const paymentRecordedMessage = "Payment recorded. In production this is where money would be transferred."

// PaymentHandler serves /api/payments.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

// ListPaymentsHandler handles GET /api/payments.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	list, err := h.Service.ListPayments(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GetPaymentHandler handles GET /api/payments/:id.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	p, err := h.Service.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to fetch payment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

// CreatePaymentHandler handles POST /api/payments. Nothing is charged; the
// payment is only recorded.
func (h *PaymentHandler) CreatePaymentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var input models.PaymentInput
	if err := bindJSON(c, &input); err != nil {
		logger.Warn("Invalid payment payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	p, err := h.Service.CreatePayment(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": paymentRecordedMessage,
		"data":    p,
	})
}

// UpdatePaymentHandler handles PATCH /api/payments/:id.
func (h *PaymentHandler) UpdatePaymentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req models.PaymentUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Warn("Invalid payment update payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	p, err := h.Service.UpdatePayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

// DeletePaymentHandler handles DELETE /api/payments/:id.
func (h *PaymentHandler) DeletePaymentHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	p, err := h.Service.DeletePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, logger, err, "Failed to delete payment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully", "data": p})
}
