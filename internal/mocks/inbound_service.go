package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ty05/booking-remind-sms/internal/service"
)

type InboundService struct {
	mock.Mock
}

func (m *InboundService) ProcessInbound(ctx context.Context, cmd service.InboundMessageCommand) (service.InboundReplyResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.InboundReplyResponse), args.Error(1)
}
