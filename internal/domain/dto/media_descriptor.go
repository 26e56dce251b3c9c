package dto

import (
	"time"

	"mediahub/internal/domain/model"
)

type MediaDescriptor struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewMediaDescriptor(m *model.Media) MediaDescriptor {
	return MediaDescriptor{
		ID:        m.ID,
		Filename:  m.Filename,
		MimeType:  m.MimeType,
		Size:      m.Size,
		CreatedAt: m.CreatedAt,
	}
}
