package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is one recorded write. AccountID is nil for anonymous actions.
type AuditLog struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	AccountID *uint `gorm:"index" json:"account_id"`

	Action   string         `gorm:"size:50;not null;index" json:"action"`
	Entity   string         `gorm:"size:50;index:idx_audit_entity" json:"entity"`
	EntityID *uint          `gorm:"index:idx_audit_entity" json:"entity_id"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
