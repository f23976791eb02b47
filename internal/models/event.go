package models

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeOrderNotification = "orders.notification_prepared"

type Event[T any] struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Time    time.Time `json:"time"`
	Payload T         `json:"payload"`
}

func NewOrderNotificationEvent(payload EmailPayload) Event[EmailPayload] {
	return Event[EmailPayload]{
		ID:      uuid.NewString(),
		Type:    EventTypeOrderNotification,
		Version: 1,
		Time:    time.Now().UTC(),
		Payload: payload,
	}
}
