package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ty05/booking-remind-sms/internal/model"
	"github.com/ty05/booking-remind-sms/internal/repository"
)

func TestMessage_DirectionValidation(t *testing.T) {
	repo := repository.NewMessageRepository(nil)

	t.Run("rejects unknown direction", func(t *testing.T) {
		err := repo.Create(context.Background(), &model.Message{
			Direction: model.MessageDirection("sideways"),
			Body:      "hello",
		})

		assert.ErrorIs(t, err, repository.ErrInvalidDirection)
	})

	t.Run("rejects empty direction", func(t *testing.T) {
		err := repo.Create(context.Background(), &model.Message{Body: "hello"})

		assert.ErrorIs(t, err, repository.ErrInvalidDirection)
	})
}
