package model

import (
	"time"
)

// University is the root of the content hierarchy
type University struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	Code      string    `json:"code,omitempty"`    // e.g., "JNTUH"
	LogoURL   string    `json:"logoUrl,omitempty"` // URL or /api/uploads/... path
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships. Children keep a plain foreign key; deleting a
	// university does not cascade (see DESIGN.md).
	Regulations []Regulation `gorm:"foreignKey:UniversityID" json:"regulations,omitempty"`
}
