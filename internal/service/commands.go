package service

import "time"

type CreateAppointmentCommand struct {
	CustomerName string
	PhoneE164    string
	ScheduledAt  time.Time
}

type SendReminderCommand struct {
	AppointmentID int64
}

type InboundMessageCommand struct {
	From       string
	To         string
	Body       string
	MessageSID string
}
