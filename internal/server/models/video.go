package models

import "time"

// Video is a file attached to a memory. FileKey locates the blob in storage.
type Video struct {
	ID          string
	MemoryID    string
	FileKey     string
	Filename    string
	ContentType string
	IsActive    bool
	CreatedAt   time.Time
}

// VideoLink pairs a video with a presigned download URL.
type VideoLink struct {
	Video *Video
	URL   string
}

// VideoUpload pairs a freshly created video with its presigned upload URL.
type VideoUpload struct {
	Video     *Video
	UploadURL string
}
