package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAuditLog represents an audit trail row for admin write operations
type AdminAuditLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	AdminID     uint           `gorm:"not null;index" json:"adminId"`
	Action      string         `gorm:"type:varchar(100);not null" json:"action"` // e.g., "create", "delete"
	Resource    string         `gorm:"type:varchar(100)" json:"resource"`        // e.g., "universities"
	ResourceID  uint           `json:"resourceId"`
	RequestBody datatypes.JSON `json:"requestBody"`
	IPAddress   string         `gorm:"type:varchar(45)" json:"ipAddress"`
	UserAgent   string         `gorm:"type:text" json:"userAgent"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// TableName specifies the table name for AdminAuditLog
func (AdminAuditLog) TableName() string {
	return "admin_audit_logs"
}
