package entity

import "time"

type EventType string

const (
	EventMediaUploaded EventType = "media.uploaded"
	EventMediaDeleted  EventType = "media.deleted"
)

type LifecycleEvent struct {
	Type       EventType `json:"type"`
	ID         string    `json:"id"`
	ObjectKey  string    `json:"objectKey"`
	OccurredAt time.Time `json:"occurredAt"`
}
