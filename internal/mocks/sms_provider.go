package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ty05/booking-remind-sms/pkg/twilio"
)

type SMSProvider struct {
	mock.Mock
}

func (p *SMSProvider) Send(ctx context.Context, from, to, body string) (twilio.Response, error) {
	args := p.Called(ctx, from, to, body)
	return args.Get(0).(twilio.Response), args.Error(1)
}
