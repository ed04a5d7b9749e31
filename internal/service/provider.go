package service

import (
	"context"

	"github.com/ty05/booking-remind-sms/internal/config"
	"github.com/ty05/booking-remind-sms/pkg/twilio"
	"go.uber.org/zap"
)

// SMSProvider is the injected send capability: one outbound text per call,
// no retries. Failures surface to the caller untouched.
type SMSProvider interface {
	Send(ctx context.Context, from, to, body string) (twilio.Response, error)
}

type Provider struct {
	client twilio.Client
	logger *zap.Logger
	config twilio.Config
}

func NewProviderService(client twilio.Client, logger *zap.Logger, config *config.Config) SMSProvider {
	return &Provider{client: client, logger: logger, config: config.Twilio}
}

func (p *Provider) Send(ctx context.Context, from, to, body string) (twilio.Response, error) {
	providerCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	response, err := p.client.Send(providerCtx, from, to, body)
	if err != nil {
		p.logger.Warn("SMS send failed",
			zap.Error(err),
			zap.String("to", to),
			zap.String("from", from))
		return twilio.Response{}, err
	}

	p.logger.Info("SMS sent successfully",
		zap.String("messageSid", response.SID),
		zap.String("status", response.Status))

	return response, nil
}
