package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ty05/booking-remind-sms/internal/constants"
	"github.com/ty05/booking-remind-sms/internal/model"
	"github.com/ty05/booking-remind-sms/internal/repository"
	"go.uber.org/zap"
)

const (
	maxCustomerNameLength = 200
	minPhoneLength        = 8
	maxPhoneLength        = 32
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, cmd CreateAppointmentCommand) (AppointmentResponse, error)
	ListAppointments(ctx context.Context) ([]AppointmentResponse, error)
}

type appointment struct {
	appointmentRepo repository.AppointmentRepository
	logger          *zap.Logger
}

func NewAppointmentService(appointmentRepo repository.AppointmentRepository, logger *zap.Logger) AppointmentService {
	return &appointment{appointmentRepo: appointmentRepo, logger: logger}
}

func (a *appointment) CreateAppointment(ctx context.Context, cmd CreateAppointmentCommand) (AppointmentResponse, error) {
	name := strings.TrimSpace(cmd.CustomerName)
	phone := strings.TrimSpace(cmd.PhoneE164)

	if err := validateAppointment(name, phone); err != nil {
		a.logger.Warn("Appointment validation failed",
			zap.Error(err),
			zap.String("phone", phone))
		return AppointmentResponse{}, NewServiceError(constants.ErrCodeValidation, err)
	}

	record := model.Appointment{
		CustomerName: name,
		PhoneE164:    phone,
		ScheduledAt:  cmd.ScheduledAt,
		Status:       model.AppointmentStatusScheduled,
		UpdatedAt:    time.Now(),
	}

	if err := a.appointmentRepo.Create(ctx, &record); err != nil {
		a.logger.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("phone", phone))
		return AppointmentResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	a.logger.Info("Appointment created",
		zap.Int64("appointmentID", record.ID),
		zap.Time("scheduledAt", record.ScheduledAt))

	return toAppointmentResponse(record), nil
}

func (a *appointment) ListAppointments(ctx context.Context) ([]AppointmentResponse, error) {
	records, err := a.appointmentRepo.ListAll()
	if err != nil {
		a.logger.Error("Failed to list appointments", zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	responses := make([]AppointmentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toAppointmentResponse(record))
	}

	return responses, nil
}

func validateAppointment(name, phone string) error {
	if name == "" {
		return errors.New("customer_name must not be empty")
	}

	if utf8.RuneCountInString(name) > maxCustomerNameLength {
		return errors.New("customer_name too long")
	}

	if len(phone) < minPhoneLength || len(phone) > maxPhoneLength {
		return errors.New("phone_e164 must be 8 to 32 characters")
	}

	return nil
}

func toAppointmentResponse(record model.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              record.ID,
		CustomerName:    record.CustomerName,
		PhoneE164:       record.PhoneE164,
		ScheduledAt:     record.ScheduledAt.Format(time.RFC3339),
		Status:          string(record.Status),
		LastInboundText: record.LastInboundText,
		UpdatedAt:       record.UpdatedAt.Format(time.RFC3339),
	}
}
