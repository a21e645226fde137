package models

import "time"

// Comment is a user comment on a video. The author's username is a
// denormalized snapshot taken at post time. Replies are structurally open
// records, stored as-is.
type Comment struct {
	ID        string                   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VideoID   string                   `json:"video_id" gorm:"index;type:varchar(36)"`
	UserID    string                   `json:"user_id" gorm:"type:varchar(36)"`
	Username  string                   `json:"username" gorm:"type:varchar(100)"`
	Text      string                   `json:"text"`
	Timestamp time.Time                `json:"timestamp"`
	Likes     int64                    `json:"likes"`
	Replies   []map[string]interface{} `json:"replies" gorm:"serializer:json"`
}

// CommentCreate is the comment request body.
type CommentCreate struct {
	VideoID string `json:"video_id"`
	Text    string `json:"text" validate:"required"`
}
