package model

import "time"

// Media is the metadata row describing one stored blob.
type Media struct {
	ID        string    `json:"id"`
	ObjectKey string    `json:"objectKey"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMedia holds the caller supplied fields of a record; ID and CreatedAt are
// assigned by the database.
type NewMedia struct {
	ObjectKey string
	Filename  string
	MimeType  string
	Size      int64
	IsPublic  bool
}
