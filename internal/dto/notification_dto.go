// FILE: internal/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationMessage struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	Level     string    `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
