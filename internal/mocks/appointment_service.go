package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ty05/booking-remind-sms/internal/service"
)

type AppointmentService struct {
	mock.Mock
}

func (m *AppointmentService) CreateAppointment(ctx context.Context, cmd service.CreateAppointmentCommand) (service.AppointmentResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.AppointmentResponse), args.Error(1)
}

func (m *AppointmentService) ListAppointments(ctx context.Context) ([]service.AppointmentResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AppointmentResponse), args.Error(1)
}
