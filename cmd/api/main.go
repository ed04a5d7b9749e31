package main

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/ty05/booking-remind-sms/internal/api"
	v1 "github.com/ty05/booking-remind-sms/internal/api/v1"
	"github.com/ty05/booking-remind-sms/internal/api/v1/middleware"
	apivalidator "github.com/ty05/booking-remind-sms/internal/api/validator"
	"github.com/ty05/booking-remind-sms/internal/config"
	"github.com/ty05/booking-remind-sms/internal/database"
	"github.com/ty05/booking-remind-sms/internal/repository"
	"github.com/ty05/booking-remind-sms/internal/service"
	"github.com/ty05/booking-remind-sms/pkg/httpclient"
	"github.com/ty05/booking-remind-sms/pkg/twilio"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			repository.NewAppointmentRepository,
			repository.NewMessageRepository,
			repository.NewTransactionManager,
			newHTTPClient,
			newTwilioClient,
			newRequestValidator,
			newValidator,
			service.NewProviderService,
			service.NewAppointmentService,
			service.NewReminderService,
			service.NewInboundService,
			newFiberApp,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Twilio.Timeout)
}

func newTwilioClient(cfg *config.Config, client httpclient.HTTPClient) twilio.Client {
	return twilio.NewClient(cfg.Twilio, client)
}

func newRequestValidator(cfg *config.Config) *twilio.RequestValidator {
	return twilio.NewRequestValidator(cfg.Twilio.AuthToken)
}

func newValidator() *apivalidator.XValidator {
	return apivalidator.NewXValidator(validator.New())
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting API server", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
