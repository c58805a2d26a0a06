// Package seed installs the built-in system templates at startup.
package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	designerdomain "github.com/smallbiznis/stencil/internal/designer/domain"
	templatedomain "github.com/smallbiznis/stencil/internal/invoicetemplate/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureSystemTemplates seeds the stock layouts for the bootstrap
// organization. Already-seeded organizations are left untouched.
func EnsureSystemTemplates(db *gorm.DB, orgID string) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if _, err := uuid.Parse(orgID); err != nil {
		return templatedomain.ErrInvalidOrganization
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&templatedomain.InvoiceTemplate{}).
			Where("org_id = ? AND template_type = ?", orgID, templatedomain.TemplateTypeSystem).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for i, stock := range stockTemplates() {
			raw, err := designerdomain.MarshalLayout(stock.layout)
			if err != nil {
				return err
			}
			tmpl := templatedomain.InvoiceTemplate{
				ID:           uuid.NewString(),
				OrgID:        orgID,
				TemplateName: stock.name,
				TemplateType: templatedomain.TemplateTypeSystem,
				PaperSize:    "a4",
				Orientation:  "portrait",
				Margins:      datatypes.JSONMap{"top": 10, "right": 10, "bottom": 10, "left": 10},
				LayoutData:   datatypes.JSON(raw),
				IsDefault:    i == 0,
				IsActive:     true,
			}
			if err := tx.Create(&tmpl).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type stockTemplate struct {
	name   string
	layout designerdomain.TemplateLayout
}

// stockTemplates are the hand-tuned classic and compact layouts shown
// in the template gallery before a user designs their own.
func stockTemplates() []stockTemplate {
	classic := designerdomain.NewLayout()
	classic.Components = []designerdomain.TemplateComponent{
		{
			ID: "seed-classic-header", Type: designerdomain.TypeHeader,
			Position:  designerdomain.Position{X: 0, Y: 0},
			Size:      designerdomain.Size{Width: 100, Height: 12},
			Styles:    designerdomain.Styles{FontSize: "xl", FontWeight: "bold", TextAlign: "center"},
			IsVisible: true,
		},
		{
			ID: "seed-classic-company", Type: designerdomain.TypeCompanyInfo,
			Position:  designerdomain.Position{X: 0, Y: 14},
			Size:      designerdomain.Size{Width: 45, Height: 18},
			Styles:    designerdomain.Styles{FontSize: "sm"},
			IsVisible: true,
		},
		{
			ID: "seed-classic-invoice", Type: designerdomain.TypeInvoiceDetails,
			Position:  designerdomain.Position{X: 58, Y: 14},
			Size:      designerdomain.Size{Width: 42, Height: 15},
			Styles:    designerdomain.Styles{FontSize: "sm", TextAlign: "right"},
			IsVisible: true,
			Fields:    []string{"invoiceNumber", "date", "dueDate"},
		},
		{
			ID: "seed-classic-client", Type: designerdomain.TypeClientInfo,
			Position:  designerdomain.Position{X: 0, Y: 34},
			Size:      designerdomain.Size{Width: 45, Height: 18},
			Styles:    designerdomain.Styles{FontSize: "sm"},
			IsVisible: true,
			Fields:    []string{"companyName", "address", "gstNumber"},
		},
		{
			ID: "seed-classic-items", Type: designerdomain.TypeItemsTable,
			Position:  designerdomain.Position{X: 0, Y: 54},
			Size:      designerdomain.Size{Width: 100, Height: 26},
			Styles:    designerdomain.Styles{FontSize: "sm"},
			IsVisible: true,
			Columns:   []string{"description", "hsnCode", "quantity", "rate", "gstRate", "amount"},
		},
		{
			ID: "seed-classic-totals", Type: designerdomain.TypeTotals,
			Position:  designerdomain.Position{X: 65, Y: 82},
			Size:      designerdomain.Size{Width: 35, Height: 12},
			Styles:    designerdomain.Styles{FontSize: "sm", TextAlign: "right"},
			IsVisible: true,
			Fields:    []string{"subtotal", "gstAmount", "total"},
		},
		{
			ID: "seed-classic-footer", Type: designerdomain.TypeFooter,
			Position:  designerdomain.Position{X: 0, Y: 95},
			Size:      designerdomain.Size{Width: 100, Height: 5},
			Styles:    designerdomain.Styles{FontSize: "xs", TextAlign: "center"},
			IsVisible: true,
			Data:      map[string]any{"content": "This is a computer generated invoice."},
		},
	}

	compact := designerdomain.NewLayout()
	compact.Components = []designerdomain.TemplateComponent{
		{
			ID: "seed-compact-header", Type: designerdomain.TypeHeader,
			Position:  designerdomain.Position{X: 0, Y: 0},
			Size:      designerdomain.Size{Width: 60, Height: 10},
			Styles:    designerdomain.Styles{FontSize: "lg", FontWeight: "bold"},
			IsVisible: true,
		},
		{
			ID: "seed-compact-invoice", Type: designerdomain.TypeInvoiceDetails,
			Position:  designerdomain.Position{X: 62, Y: 0},
			Size:      designerdomain.Size{Width: 38, Height: 10},
			Styles:    designerdomain.Styles{FontSize: "xs", TextAlign: "right"},
			IsVisible: true,
			Fields:    []string{"invoiceNumber", "date"},
		},
		{
			ID: "seed-compact-items", Type: designerdomain.TypeItemsTable,
			Position:  designerdomain.Position{X: 0, Y: 14},
			Size:      designerdomain.Size{Width: 100, Height: 60},
			Styles:    designerdomain.Styles{FontSize: "xs"},
			IsVisible: true,
			Columns:   []string{"description", "quantity", "amount"},
		},
		{
			ID: "seed-compact-totals", Type: designerdomain.TypeTotals,
			Position:  designerdomain.Position{X: 65, Y: 76},
			Size:      designerdomain.Size{Width: 35, Height: 12},
			Styles:    designerdomain.Styles{FontSize: "sm", TextAlign: "right"},
			IsVisible: true,
			Fields:    []string{"total"},
		},
	}

	return []stockTemplate{
		{name: "Classic GST", layout: classic},
		{name: "Compact", layout: compact},
	}
}
