package database

import (
	"github.com/ty05/booking-remind-sms/internal/config"
	"github.com/ty05/booking-remind-sms/internal/model"
	"github.com/ty05/booking-remind-sms/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := mysql.NewConnection(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Appointment{}, &model.Message{}); err != nil {
		logger.Error("Failed to migrate schema", zap.Error(err))
		return nil, err
	}

	return db, nil
}
