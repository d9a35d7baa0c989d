package model

import (
	"time"
)

// Regulation is an academic regulation/scheme under a university (e.g. R22)
type Regulation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	UniversityID uint      `gorm:"not null;index" json:"universityId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	University University `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
	Branches   []Branch   `gorm:"foreignKey:RegulationID" json:"branches,omitempty"`
}

// Branch is a study branch under a regulation (e.g. CSE)
type Branch struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Code         string    `json:"code,omitempty"`
	RegulationID uint      `gorm:"not null;index" json:"regulationId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Regulation Regulation `gorm:"foreignKey:RegulationID" json:"regulation,omitempty"`
	Subjects   []Subject  `gorm:"foreignKey:BranchID" json:"subjects,omitempty"`
}

// Subject is an individual academic subject (e.g. DBMS)
type Subject struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Code      string    `json:"code,omitempty"` // e.g. CS301
	BranchID  uint      `gorm:"not null;index" json:"branchId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Branch Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Units  []Unit `gorm:"foreignKey:SubjectID" json:"units,omitempty"`
}

// Unit is a teaching unit within a subject (e.g. "Unit 1: Introduction")
type Unit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Order     int       `gorm:"column:order;not null;default:1" json:"order"` // 1..5
	SubjectID uint      `gorm:"not null;index" json:"subjectId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Subject  Subject   `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Contents []Content `gorm:"foreignKey:UnitID" json:"-"`
}
