package v1

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	apivalidator "github.com/ty05/booking-remind-sms/internal/api/validator"
	"github.com/ty05/booking-remind-sms/internal/config"
	"github.com/ty05/booking-remind-sms/internal/constants"
	"github.com/ty05/booking-remind-sms/internal/service"
	"github.com/ty05/booking-remind-sms/pkg/twilio"
	"go.uber.org/zap"
)

// scheduledAtLayout accepts naive timestamps; RFC3339 is tried first.
const scheduledAtLayout = "2006-01-02T15:04:05"

type Handler struct {
	logger       *zap.Logger
	appointments service.AppointmentService
	reminders    service.ReminderService
	inbound      service.InboundService
	validator    *apivalidator.XValidator
	sigValidator *twilio.RequestValidator
	twilioCfg    twilio.Config
}

func NewHandler(logger *zap.Logger, appointments service.AppointmentService, reminders service.ReminderService,
	inbound service.InboundService, validator *apivalidator.XValidator, sigValidator *twilio.RequestValidator,
	cfg *config.Config) *Handler {
	return &Handler{
		logger:       logger,
		appointments: appointments,
		reminders:    reminders,
		inbound:      inbound,
		validator:    validator,
		sigValidator: sigValidator,
		twilioCfg:    cfg.Twilio,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{OK: true})
}

func (h *Handler) CreateAppointment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CreateAppointmentRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    constants.ErrCodeValidation,
			"message": h.validator.ErrorMessage(errs),
		})
	}

	scheduledAt, err := parseScheduledAt(request.ScheduledAt)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    constants.ErrCodeValidation,
			"message": "scheduled_at is invalid",
		})
	}

	cmd := service.CreateAppointmentCommand{
		CustomerName: request.CustomerName,
		PhoneE164:    request.PhoneE164,
		ScheduledAt:  scheduledAt,
	}

	resp, err := h.appointments.CreateAppointment(ctx, cmd)
	if err != nil {
		return err
	}

	return c.JSON(CreateAppointmentResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		PhoneE164:    resp.PhoneE164,
		ScheduledAt:  resp.ScheduledAt,
		Status:       resp.Status,
	})
}

func (h *Handler) ListAppointments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	records, err := h.appointments.ListAppointments(ctx)
	if err != nil {
		return err
	}

	responses := make([]AppointmentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, AppointmentResponse{
			ID:              record.ID,
			CustomerName:    record.CustomerName,
			PhoneE164:       record.PhoneE164,
			ScheduledAt:     record.ScheduledAt,
			Status:          record.Status,
			LastInboundText: record.LastInboundText,
			UpdatedAt:       record.UpdatedAt,
		})
	}

	return c.JSON(responses)
}

func (h *Handler) SendReminder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendReminderRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	resp, err := h.reminders.SendReminder(ctx, service.SendReminderCommand{AppointmentID: request.AppointmentID})
	if err != nil {
		h.logger.Warn("Send reminder failed",
			zap.Error(err),
			zap.Int64("appointmentID", request.AppointmentID))
		return err
	}

	return c.JSON(SendReminderResponse{
		Sent:          resp.Sent,
		TwilioSID:     resp.TwilioSID,
		AppointmentID: resp.AppointmentID,
	})
}

// InboundSMS handles the Twilio webhook. When an auth token is configured the
// request signature is verified before anything is stored; without a token
// the check is skipped.
func (h *Handler) InboundSMS(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if h.twilioCfg.AuthToken != "" {
		params, err := formParams(c.Body())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":    constants.ErrCodeInvalidRequestBody,
				"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
			})
		}

		signature := c.Get(twilio.SignatureHeader)
		callbackURL := c.BaseURL() + c.OriginalURL()

		if !h.sigValidator.Validate(callbackURL, params, signature) {
			h.logger.Warn("Rejected webhook with invalid signature",
				zap.String("url", callbackURL))
			return service.NewServiceError(constants.ErrCodeForbidden,
				errors.New("twilio signature mismatch"))
		}
	}

	var request InboundSMSRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse webhook form", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	cmd := service.InboundMessageCommand{
		From:       strings.TrimSpace(request.From),
		To:         strings.TrimSpace(request.To),
		Body:       strings.TrimSpace(request.Body),
		MessageSID: request.MessageSID,
	}

	resp, err := h.inbound.ProcessInbound(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to process inbound message",
			zap.Error(err),
			zap.String("from", cmd.From))
		return err
	}

	twiml := new(twilio.MessagingResponse).Message(resp.Reply)
	markup, err := twiml.Render()
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(markup)
}

func parseScheduledAt(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse(scheduledAtLayout, raw)
}

// formParams decodes the urlencoded webhook body into the single-value map
// the signature is computed over.
func formParams(body []byte) (map[string]string, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, err
	}

	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}

	return params, nil
}
