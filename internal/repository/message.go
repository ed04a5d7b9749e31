package repository

import (
	"context"
	"errors"

	"github.com/ty05/booking-remind-sms/internal/model"
	"gorm.io/gorm"
)

var ErrInvalidDirection = errors.New("INVALID_DIRECTION")

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
}

type Message struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &Message{db: db}
}

func (m *Message) Create(ctx context.Context, message *model.Message) error {
	if !message.Direction.Valid() {
		return ErrInvalidDirection
	}

	db := GetTx(ctx, m.db)
	return db.Create(message).Error
}
