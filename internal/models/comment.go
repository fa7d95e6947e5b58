package models

import "time"

// Comment is reader-submitted text attached to exactly one post.
// The body column is named "comment" for compatibility with the
// original schema.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	Body      string    `gorm:"column:comment;type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
