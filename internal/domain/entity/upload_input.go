package entity

import "io"

// UploadInput is one file as received from the transport. MimeType and Size
// are taken as reported; neither is verified against Body.
type UploadInput struct {
	Filename string
	Body     io.Reader
	Size     int64
	MimeType string
}
