package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusReminded   AppointmentStatus = "reminded"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusReschedule AppointmentStatus = "reschedule"
	AppointmentStatusOptOut     AppointmentStatus = "opt_out"
)

// Valid reports whether the status is one of the enumerated values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusReminded, AppointmentStatusConfirmed,
		AppointmentStatusReschedule, AppointmentStatusOptOut:
		return true
	}
	return false
}

type Appointment struct {
	ID              int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	CustomerName    string            `gorm:"column:customer_name;type:varchar(200)"`
	PhoneE164       string            `gorm:"column:phone_e164;type:varchar(32);index:idx_appointments_phone"`
	ScheduledAt     time.Time         `gorm:"column:scheduled_at"`
	Status          AppointmentStatus `gorm:"column:status;type:varchar(32)"`
	LastInboundText *string           `gorm:"column:last_inbound_text;type:text"`
	UpdatedAt       time.Time         `gorm:"column:updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
