// Package repository implements template storage on gorm.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/smallbiznis/stencil/internal/invoicetemplate/domain"
	"gorm.io/gorm"
)

type Repository struct{}

// Provide constructs the gorm-backed template repository.
func Provide() domain.Repository {
	return &Repository{}
}

func (r *Repository) Insert(ctx context.Context, db *gorm.DB, tmpl *domain.InvoiceTemplate) error {
	return db.WithContext(ctx).Create(tmpl).Error
}

func (r *Repository) Update(ctx context.Context, db *gorm.DB, tmpl *domain.InvoiceTemplate) error {
	return db.WithContext(ctx).Save(tmpl).Error
}

func (r *Repository) Delete(ctx context.Context, db *gorm.DB, orgID, id string) error {
	result := db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		Delete(&domain.InvoiceTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, db *gorm.DB, orgID, id string) (*domain.InvoiceTemplate, error) {
	var tmpl domain.InvoiceTemplate
	err := db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		First(&tmpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *Repository) FindDefault(ctx context.Context, db *gorm.DB, orgID string) (*domain.InvoiceTemplate, error) {
	var tmpl domain.InvoiceTemplate
	err := db.WithContext(ctx).
		Where("org_id = ? AND is_default = ?", orgID, true).
		First(&tmpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *Repository) List(ctx context.Context, db *gorm.DB, orgID string, filter domain.ListRequest) ([]domain.InvoiceTemplate, error) {
	query := db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at ASC")

	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("template_name LIKE ?", "%"+name+"%")
	}
	if t := strings.TrimSpace(filter.Type); t != "" {
		query = query.Where("template_type = ?", t)
	}
	if filter.IsDefault != nil {
		query = query.Where("is_default = ?", *filter.IsDefault)
	}

	var templates []domain.InvoiceTemplate
	if err := query.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// ClearDefaults unsets every default flag for the owner. SetDefault is
// two-step: clear all, then set one, inside one transaction.
func (r *Repository) ClearDefaults(ctx context.Context, db *gorm.DB, orgID string) error {
	return db.WithContext(ctx).
		Model(&domain.InvoiceTemplate{}).
		Where("org_id = ? AND is_default = ?", orgID, true).
		Update("is_default", false).Error
}
