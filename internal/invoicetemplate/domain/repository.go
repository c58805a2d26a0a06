package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tmpl *InvoiceTemplate) error
	Update(ctx context.Context, db *gorm.DB, tmpl *InvoiceTemplate) error
	Delete(ctx context.Context, db *gorm.DB, orgID, id string) error
	FindByID(ctx context.Context, db *gorm.DB, orgID, id string) (*InvoiceTemplate, error)
	FindDefault(ctx context.Context, db *gorm.DB, orgID string) (*InvoiceTemplate, error)
	List(ctx context.Context, db *gorm.DB, orgID string, filter ListRequest) ([]InvoiceTemplate, error)
	ClearDefaults(ctx context.Context, db *gorm.DB, orgID string) error
}
