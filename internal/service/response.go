package service

type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customer_name"`
	PhoneE164       string  `json:"phone_e164"`
	ScheduledAt     string  `json:"scheduled_at"`
	Status          string  `json:"status"`
	LastInboundText *string `json:"last_inbound_text"`
	UpdatedAt       string  `json:"updated_at"`
}

type SendReminderResponse struct {
	Sent          bool   `json:"sent"`
	TwilioSID     string `json:"twilio_sid"`
	AppointmentID int64  `json:"appointment_id"`
}

type InboundReplyResponse struct {
	Reply         string `json:"reply"`
	AppointmentID *int64 `json:"appointment_id"`
}
