package repository

import (
	appointmentRepo "ziaclinic/database/repository/appointment"
	paymentRepo "ziaclinic/database/repository/payment"
)

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

var NewMongoAppointmentRepo = appointmentRepo.NewMongoAppointmentRepo

// Re-export the PaymentRepository interface and constructor.
type PaymentRepository = paymentRepo.PaymentRepository

var NewMongoPaymentRepo = paymentRepo.NewMongoPaymentRepo
