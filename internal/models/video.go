package models

import "time"

// Video is a catalog entry backed by a Google Drive source link.
// Counters only ever increment; soft deletion flips IsActive.
type Video struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title          string    `json:"title" gorm:"type:varchar(255)"`
	Description    string    `json:"description,omitempty"`
	GoogleDriveURL string    `json:"google_drive_url"`
	EmbedURL       string    `json:"embed_url"`
	Thumbnail      string    `json:"thumbnail,omitempty"`
	Category       string    `json:"category" gorm:"index;type:varchar(100)"`
	Tags           []string  `json:"tags" gorm:"serializer:json"`
	Duration       *int      `json:"duration"` // seconds; nil when unknown
	Views          int64     `json:"views"`
	Likes          int64     `json:"likes"`
	Dislikes       int64     `json:"dislikes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	IsActive       bool      `json:"is_active"`
	UploadedBy     string    `json:"uploaded_by" gorm:"type:varchar(36)"`
}

// VideoCreate is the admin upload request body.
type VideoCreate struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	GoogleDriveURL string   `json:"google_drive_url" validate:"required,url"`
	Category       string   `json:"category" validate:"required"`
	Tags           []string `json:"tags"`
	Duration       *int     `json:"duration"`
}
