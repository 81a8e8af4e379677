package model

import "time"

const (
	ActivityUserSignup   = "user_signup"
	ActivityPostCreated  = "post_created"
	ActivityCommentAdded = "comment_added"
)

// Activity is an audit record of a mutating API call. Rows are written
// asynchronously by the activity worker, never by request handlers.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"size:32;not null;index" json:"kind"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	SubjectID uint      `gorm:"not null" json:"subject_id"`
	CreatedAt time.Time `json:"created_at"`
}
