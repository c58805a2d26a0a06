// Package domain contains persistence models and contracts for stored
// invoice templates.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TemplateTypeSystem   = "system"
	TemplateTypeCustom   = "custom"
	TemplateTypeIndustry = "industry"
)

// InvoiceTemplate is one stored template: metadata plus the opaque
// layout document the designer reads and writes.
type InvoiceTemplate struct {
	ID           string            `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID        string            `gorm:"type:uuid;not null;index" json:"organization_id"`
	TemplateName string            `gorm:"type:text;not null" json:"template_name"`
	TemplateType string            `gorm:"type:text;not null;default:'custom'" json:"template_type"`
	PaperSize    string            `gorm:"type:text;not null;default:'a4'" json:"paper_size"`
	Orientation  string            `gorm:"type:text;not null;default:'portrait'" json:"orientation"`
	Margins      datatypes.JSONMap `gorm:"type:jsonb" json:"margins"`
	LayoutData   datatypes.JSON    `gorm:"type:jsonb" json:"layout_data"`
	IsDefault    bool              `gorm:"not null;default:false" json:"is_default"`
	IsActive     bool              `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (InvoiceTemplate) TableName() string { return "invoice_templates" }

// ValidTemplateType reports whether t is one of the known template kinds.
func ValidTemplateType(t string) bool {
	switch t {
	case TemplateTypeSystem, TemplateTypeCustom, TemplateTypeIndustry:
		return true
	default:
		return false
	}
}
