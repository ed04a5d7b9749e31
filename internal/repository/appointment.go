package repository

import (
	"context"
	"errors"

	"github.com/ty05/booking-remind-sms/internal/model"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("APPOINTMENT_NOT_FOUND")
var ErrInvalidStatus = errors.New("INVALID_STATUS")

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Update(ctx context.Context, appointment *model.Appointment) error
	GetByID(id int64) (*model.Appointment, error)
	GetLatestByPhone(phone string) (*model.Appointment, error)
	ListAll() ([]model.Appointment, error)
}

type Appointment struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &Appointment{db: db}
}

func (a *Appointment) Create(ctx context.Context, appointment *model.Appointment) error {
	if !appointment.Status.Valid() {
		return ErrInvalidStatus
	}

	db := GetTx(ctx, a.db)
	return db.Create(appointment).Error
}

// Update writes the non-zero fields of the record. An empty status means
// "keep the current one" and is allowed through.
func (a *Appointment) Update(ctx context.Context, appointment *model.Appointment) error {
	if appointment.Status != "" && !appointment.Status.Valid() {
		return ErrInvalidStatus
	}

	db := GetTx(ctx, a.db)
	return db.Model(appointment).Where("id = ?", appointment.ID).Updates(appointment).Error
}

func (a *Appointment) GetByID(id int64) (*model.Appointment, error) {
	var appointment model.Appointment

	err := a.db.Where("id = ?", id).First(&appointment).Error
	if err == nil {
		return &appointment, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAppointmentNotFound
	}

	return nil, err
}

// GetLatestByPhone returns the appointment with the latest scheduled time for
// an exactly matching phone number. Equal scheduled times break toward the
// highest id so the result is deterministic.
func (a *Appointment) GetLatestByPhone(phone string) (*model.Appointment, error) {
	var appointment model.Appointment

	err := a.db.Where("phone_e164 = ?", phone).
		Order("scheduled_at DESC, id DESC").
		First(&appointment).Error
	if err == nil {
		return &appointment, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAppointmentNotFound
	}

	return nil, err
}

func (a *Appointment) ListAll() ([]model.Appointment, error) {
	var appointments []model.Appointment

	err := a.db.Order("scheduled_at ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	return appointments, nil
}
