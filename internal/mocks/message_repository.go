package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ty05/booking-remind-sms/internal/model"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
