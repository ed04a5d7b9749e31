package model

import "time"

type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "inbound"
	MessageDirectionOutbound MessageDirection = "outbound"
)

func (d MessageDirection) Valid() bool {
	return d == MessageDirectionInbound || d == MessageDirectionOutbound
}

// Message is one row of the SMS log. AppointmentID is nil for inbound
// messages whose sender matched no appointment.
type Message struct {
	ID            int64            `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	AppointmentID *int64           `gorm:"column:appointment_id"`
	Direction     MessageDirection `gorm:"column:direction;type:varchar(16)"`
	FromNumber    string           `gorm:"column:from_number;type:varchar(32)"`
	ToNumber      string           `gorm:"column:to_number;type:varchar(32)"`
	Body          string           `gorm:"column:body;type:text"`
	TwilioSID     *string          `gorm:"column:twilio_sid;type:varchar(64);index:idx_messages_twilio_sid"`
	CreatedAt     time.Time        `gorm:"column:created_at"`
}

func (Message) TableName() string {
	return "messages"
}
