package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ty05/booking-remind-sms/internal/model"
	"github.com/ty05/booking-remind-sms/internal/repository"
	"go.uber.org/zap"
)

const (
	replyNoAppointment = "予約が見つかりませんでした。必要なら担当者にご連絡ください。"
	replyOptOut        = "配信停止を受け付けました。"
	replyConfirmed     = "確認ありがとうございます。当日お待ちしております。"
	replyReschedule    = "変更希望を受け付けました。追ってご連絡します。"
	replyUnrecognized  = "返信は 1(確認) / 2(変更希望) でお願いします。配信停止は STOP です。"
)

var optOutKeywords = map[string]struct{}{
	"STOP":        {},
	"UNSUBSCRIBE": {},
	"CANCEL":      {},
	"END":         {},
	"QUIT":        {},
}

type InboundService interface {
	ProcessInbound(ctx context.Context, cmd InboundMessageCommand) (InboundReplyResponse, error)
}

type inbound struct {
	appointmentRepo repository.AppointmentRepository
	messageRepo     repository.MessageRepository
	txManager       repository.TxManager
	logger          *zap.Logger
}

func NewInboundService(appointmentRepo repository.AppointmentRepository, messageRepo repository.MessageRepository,
	txManager repository.TxManager, logger *zap.Logger) InboundService {
	return &inbound{
		appointmentRepo: appointmentRepo,
		messageRepo:     messageRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// ProcessInbound logs the received message, matches it to the latest
// appointment of the sending number and applies the reply keyword. Replays of
// the same webhook call are not deduplicated; the status transitions are
// idempotent per value, the message log duplicates.
func (i *inbound) ProcessInbound(ctx context.Context, cmd InboundMessageCommand) (InboundReplyResponse, error) {
	message := model.Message{
		Direction:  model.MessageDirectionInbound,
		FromNumber: cmd.From,
		ToNumber:   cmd.To,
		Body:       cmd.Body,
		CreatedAt:  time.Now(),
	}
	if cmd.MessageSID != "" {
		sid := cmd.MessageSID
		message.TwilioSID = &sid
	}

	appt, err := i.appointmentRepo.GetLatestByPhone(cmd.From)
	if err != nil && !errors.Is(err, repository.ErrAppointmentNotFound) {
		i.logger.Error("Failed to look up appointment for inbound message",
			zap.Error(err),
			zap.String("from", cmd.From))
		return InboundReplyResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if appt == nil {
		if err := i.messageRepo.Create(ctx, &message); err != nil {
			i.logger.Error("Failed to store unmatched inbound message", zap.Error(err))
			return InboundReplyResponse{}, NewServiceError(ErrCodeDatabase, err)
		}

		i.logger.Info("Inbound message matched no appointment",
			zap.String("from", cmd.From))
		return InboundReplyResponse{Reply: replyNoAppointment}, nil
	}

	status, reply := classifyReply(cmd.Body)

	message.AppointmentID = &appt.ID

	lastInbound := cmd.Body
	update := model.Appointment{
		ID:              appt.ID,
		Status:          status,
		LastInboundText: &lastInbound,
		UpdatedAt:       time.Now(),
	}

	err = i.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := i.messageRepo.Create(ctx, &message); err != nil {
			return err
		}

		return i.appointmentRepo.Update(ctx, &update)
	})
	if err != nil {
		i.logger.Error("Failed to commit inbound message",
			zap.Error(err),
			zap.Int64("appointmentID", appt.ID))
		return InboundReplyResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	i.logger.Info("Inbound message processed",
		zap.Int64("appointmentID", appt.ID),
		zap.String("status", string(status)))

	return InboundReplyResponse{Reply: reply, AppointmentID: &appt.ID}, nil
}

// classifyReply maps a normalized inbound body to the resulting status. An
// empty status means the appointment keeps its current one.
func classifyReply(body string) (model.AppointmentStatus, string) {
	normalized := strings.ToUpper(strings.TrimSpace(body))

	if _, ok := optOutKeywords[normalized]; ok {
		return model.AppointmentStatusOptOut, replyOptOut
	}

	switch normalized {
	case "1":
		return model.AppointmentStatusConfirmed, replyConfirmed
	case "2":
		return model.AppointmentStatusReschedule, replyReschedule
	default:
		return "", replyUnrecognized
	}
}
