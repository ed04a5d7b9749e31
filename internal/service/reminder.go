package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ty05/booking-remind-sms/internal/config"
	"github.com/ty05/booking-remind-sms/internal/constants"
	"github.com/ty05/booking-remind-sms/internal/model"
	"github.com/ty05/booking-remind-sms/internal/repository"
	"github.com/ty05/booking-remind-sms/pkg/twilio"
	"go.uber.org/zap"
)

const scheduledAtDisplayLayout = "2006-01-02 15:04"

type ReminderService interface {
	SendReminder(ctx context.Context, cmd SendReminderCommand) (SendReminderResponse, error)
}

type reminder struct {
	appointmentRepo repository.AppointmentRepository
	messageRepo     repository.MessageRepository
	txManager       repository.TxManager
	provider        SMSProvider
	twilioCfg       twilio.Config
	logger          *zap.Logger
}

func NewReminderService(appointmentRepo repository.AppointmentRepository, messageRepo repository.MessageRepository,
	txManager repository.TxManager, provider SMSProvider, cfg *config.Config, logger *zap.Logger) ReminderService {
	return &reminder{
		appointmentRepo: appointmentRepo,
		messageRepo:     messageRepo,
		txManager:       txManager,
		provider:        provider,
		twilioCfg:       cfg.Twilio,
		logger:          logger,
	}
}

// SendReminder sends the reminder text for one appointment. Storage is only
// touched after the provider accepted the message; a crash between the two is
// an accepted loss-of-consistency risk.
func (r *reminder) SendReminder(ctx context.Context, cmd SendReminderCommand) (SendReminderResponse, error) {
	appt, err := r.appointmentRepo.GetByID(cmd.AppointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return SendReminderResponse{}, NewServiceError(constants.ErrCodeAppointmentNotFound, err)
		}

		r.logger.Error("Failed to load appointment",
			zap.Error(err),
			zap.Int64("appointmentID", cmd.AppointmentID))
		return SendReminderResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if appt.Status == model.AppointmentStatusOptOut {
		r.logger.Warn("Reminder refused, customer opted out",
			zap.Int64("appointmentID", appt.ID))
		return SendReminderResponse{}, NewServiceError(constants.ErrCodeCustomerOptedOut,
			errors.New("customer opted out of messaging"))
	}

	if !r.twilioCfg.Configured() {
		return SendReminderResponse{}, NewServiceError(constants.ErrCodeProviderNotConfigured,
			errors.New("twilio account sid, auth token and from number are required"))
	}

	body := formatReminderBody(appt)

	response, err := r.provider.Send(ctx, r.twilioCfg.FromNumber, appt.PhoneE164, body)
	if err != nil {
		r.logger.Error("Provider send failed",
			zap.Error(err),
			zap.Int64("appointmentID", appt.ID))
		return SendReminderResponse{}, NewServiceError(constants.ErrCodeProviderSendFailed, err)
	}

	now := time.Now()
	outbound := model.Message{
		AppointmentID: &appt.ID,
		Direction:     model.MessageDirectionOutbound,
		FromNumber:    r.twilioCfg.FromNumber,
		ToNumber:      appt.PhoneE164,
		Body:          body,
		TwilioSID:     &response.SID,
		CreatedAt:     now,
	}

	update := model.Appointment{
		ID:        appt.ID,
		Status:    model.AppointmentStatusReminded,
		UpdatedAt: now,
	}

	err = r.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := r.messageRepo.Create(ctx, &outbound); err != nil {
			return err
		}

		return r.appointmentRepo.Update(ctx, &update)
	})
	if err != nil {
		r.logger.Error("Failed to record sent reminder",
			zap.Error(err),
			zap.Int64("appointmentID", appt.ID),
			zap.String("messageSid", response.SID))
		return SendReminderResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	r.logger.Info("Reminder sent",
		zap.Int64("appointmentID", appt.ID),
		zap.String("messageSid", response.SID))

	return SendReminderResponse{Sent: true, TwilioSID: response.SID, AppointmentID: appt.ID}, nil
}

func formatReminderBody(appt *model.Appointment) string {
	return fmt.Sprintf("%s様、予約リマインドです。\n日時: %s\nご確認: 1 / 変更希望: 2 と返信してください。",
		appt.CustomerName, appt.ScheduledAt.Format(scheduledAtDisplayLayout))
}
