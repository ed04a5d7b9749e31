package api

import (
	"github.com/gofiber/fiber/v2"
	v1 "github.com/ty05/booking-remind-sms/internal/api/v1"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/health", handler.Health)
	app.Post("/appointments", handler.CreateAppointment)
	app.Get("/appointments", handler.ListAppointments)
	app.Post("/send-reminder", handler.SendReminder)
	app.Post("/webhooks/sms", handler.InboundSMS)
}
