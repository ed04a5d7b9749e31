package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ty05/booking-remind-sms/internal/service"
)

type ReminderService struct {
	mock.Mock
}

func (m *ReminderService) SendReminder(ctx context.Context, cmd service.SendReminderCommand) (service.SendReminderResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.SendReminderResponse), args.Error(1)
}
