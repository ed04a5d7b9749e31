package v1

type CreateAppointmentRequest struct {
	CustomerName string `json:"customer_name" validate:"required,notblank,max=200"`
	PhoneE164    string `json:"phone_e164" validate:"required,min=8,max=32"`
	ScheduledAt  string `json:"scheduled_at" validate:"required"`
}

// SendReminderRequest carries no validation tags: an unknown or zero id is
// reported as a lookup failure, not a malformed request.
type SendReminderRequest struct {
	AppointmentID int64 `json:"appointment_id"`
}

// InboundSMSRequest carries the form fields of a Twilio inbound-SMS webhook.
type InboundSMSRequest struct {
	From       string `form:"From"`
	To         string `form:"To"`
	Body       string `form:"Body"`
	MessageSID string `form:"MessageSid"`
}
