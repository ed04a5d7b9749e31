package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/ty05/booking-remind-sms/internal/mocks"
	"github.com/ty05/booking-remind-sms/internal/model"
	"github.com/ty05/booking-remind-sms/internal/repository"
	"github.com/ty05/booking-remind-sms/internal/service"
	"go.uber.org/zap"
)

func inboundCommand(body string) service.InboundMessageCommand {
	return service.InboundMessageCommand{
		From:       "+819012345678",
		To:         "+15550001111",
		Body:       body,
		MessageSID: "SMinbound1",
	}
}

func TestInbound_ProcessInbound(t *testing.T) {
	logger := zap.NewNop()

	t.Run("stores unowned message when no appointment matches", func(t *testing.T) {
		mockApptRepo := &mocks.AppointmentRepository{}
		mockMsgRepo := &mocks.MessageRepository{}
		mockTxManager := &mocks.TxManager{}

		svc := service.NewInboundService(mockApptRepo, mockMsgRepo, mockTxManager, logger)

		mockApptRepo.On("GetLatestByPhone", "+819012345678").
			Return(nil, repository.ErrAppointmentNotFound)

		mockMsgRepo.On("Create", context.Background(),
			mock.MatchedBy(func(msg *model.Message) bool {
				return msg.AppointmentID == nil &&
					msg.Direction == model.MessageDirectionInbound &&
					msg.FromNumber == "+819012345678" &&
					msg.TwilioSID != nil && *msg.TwilioSID == "SMinbound1"
			})).Return(nil)

		resp, err := svc.ProcessInbound(context.Background(), inboundCommand("1"))

		assert.NoError(t, err)
		assert.Nil(t, resp.AppointmentID)
		assert.Equal(t, "予約が見つかりませんでした。必要なら担当者にご連絡ください。", resp.Reply)

		mockApptRepo.AssertNotCalled(t, "Update")
		mockTxManager.AssertNotCalled(t, "WithTx")
		mockMsgRepo.AssertExpectations(t)
	})

	t.Run("applies reply keywords to the matched appointment", func(t *testing.T) {
		cases := []struct {
			name   string
			body   string
			status model.AppointmentStatus
			reply  string
		}{
			{"stop", "STOP", model.AppointmentStatusOptOut, "配信停止を受け付けました。"},
			{"stop lowercase padded", " stop ", model.AppointmentStatusOptOut, "配信停止を受け付けました。"},
			{"unsubscribe", "UNSUBSCRIBE", model.AppointmentStatusOptOut, "配信停止を受け付けました。"},
			{"cancel", "CANCEL", model.AppointmentStatusOptOut, "配信停止を受け付けました。"},
			{"end", "END", model.AppointmentStatusOptOut, "配信停止を受け付けました。"},
			{"quit", "QUIT", model.AppointmentStatusOptOut, "配信停止を受け付けました。"},
			{"confirm", "1", model.AppointmentStatusConfirmed, "確認ありがとうございます。当日お待ちしております。"},
			{"reschedule", "2", model.AppointmentStatusReschedule, "変更希望を受け付けました。追ってご連絡します。"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockApptRepo := &mocks.AppointmentRepository{}
				mockMsgRepo := &mocks.MessageRepository{}
				mockTxManager := &mocks.TxManager{}

				svc := service.NewInboundService(mockApptRepo, mockMsgRepo, mockTxManager, logger)

				appt := &model.Appointment{
					ID:        7,
					PhoneE164: "+819012345678",
					Status:    model.AppointmentStatusReminded,
				}
				mockApptRepo.On("GetLatestByPhone", "+819012345678").Return(appt, nil)

				mockTxManager.On("WithTx", context.Background(),
					mock.AnythingOfType("func(context.Context) error")).Return(nil)

				mockMsgRepo.On("Create", mock.AnythingOfType("*context.valueCtx"),
					mock.MatchedBy(func(msg *model.Message) bool {
						return msg.AppointmentID != nil && *msg.AppointmentID == 7 &&
							msg.Direction == model.MessageDirectionInbound &&
							msg.Body == tc.body
					})).Return(nil)

				mockApptRepo.On("Update", mock.AnythingOfType("*context.valueCtx"),
					mock.MatchedBy(func(a *model.Appointment) bool {
						return a.ID == 7 &&
							a.Status == tc.status &&
							a.LastInboundText != nil && *a.LastInboundText == tc.body
					})).Return(nil)

				resp, err := svc.ProcessInbound(context.Background(), inboundCommand(tc.body))

				assert.NoError(t, err)
				assert.Equal(t, tc.reply, resp.Reply)
				assert.NotNil(t, resp.AppointmentID)
				assert.Equal(t, int64(7), *resp.AppointmentID)

				mockApptRepo.AssertExpectations(t)
				mockMsgRepo.AssertExpectations(t)
				mockTxManager.AssertExpectations(t)
			})
		}
	})

	t.Run("keeps status for unrecognized reply", func(t *testing.T) {
		mockApptRepo := &mocks.AppointmentRepository{}
		mockMsgRepo := &mocks.MessageRepository{}
		mockTxManager := &mocks.TxManager{}

		svc := service.NewInboundService(mockApptRepo, mockMsgRepo, mockTxManager, logger)

		appt := &model.Appointment{ID: 7, PhoneE164: "+819012345678", Status: model.AppointmentStatusReminded}
		mockApptRepo.On("GetLatestByPhone", "+819012345678").Return(appt, nil)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockMsgRepo.On("Create", mock.AnythingOfType("*context.valueCtx"),
			mock.AnythingOfType("*model.Message")).Return(nil)

		mockApptRepo.On("Update", mock.AnythingOfType("*context.valueCtx"),
			mock.MatchedBy(func(a *model.Appointment) bool {
				return a.ID == 7 &&
					a.Status == model.AppointmentStatus("") &&
					a.LastInboundText != nil && *a.LastInboundText == "maybe later"
			})).Return(nil)

		resp, err := svc.ProcessInbound(context.Background(), inboundCommand("maybe later"))

		assert.NoError(t, err)
		assert.Equal(t, "返信は 1(確認) / 2(変更希望) でお願いします。配信停止は STOP です。", resp.Reply)

		mockApptRepo.AssertExpectations(t)
	})

	t.Run("fails without writes when lookup errors", func(t *testing.T) {
		mockApptRepo := &mocks.AppointmentRepository{}
		mockMsgRepo := &mocks.MessageRepository{}
		mockTxManager := &mocks.TxManager{}

		svc := service.NewInboundService(mockApptRepo, mockMsgRepo, mockTxManager, logger)

		mockApptRepo.On("GetLatestByPhone", "+819012345678").
			Return(nil, errors.New("connection reset"))

		_, err := svc.ProcessInbound(context.Background(), inboundCommand("1"))

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, service.ErrCodeDatabase, serviceErr.Code)

		mockMsgRepo.AssertNotCalled(t, "Create")
		mockApptRepo.AssertNotCalled(t, "Update")
	})
}
