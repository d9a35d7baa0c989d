package model

import (
	"time"
)

// ContentType is the payload kind of a content row
type ContentType string

const (
	ContentTypePDF   ContentType = "pdf"
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
)

// Content is a leaf resource attached to a unit. For pdf and image rows the
// URL field carries the payload location; for text rows the Text field
// carries the body itself.
type Content struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UnitID    uint        `gorm:"not null;index" json:"unitId"`
	Type      ContentType `gorm:"type:varchar(10);not null" json:"type"`
	Title     string      `json:"title,omitempty"`
	URL       string      `json:"url,omitempty"`
	Text      string      `gorm:"type:text" json:"text,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`

	Unit Unit `gorm:"foreignKey:UnitID" json:"-"`
}
