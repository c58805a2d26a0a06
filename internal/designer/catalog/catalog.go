// Package catalog holds the static component-type definitions used to
// instantiate new layout components.
package catalog

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/stencil/internal/designer/domain"
	"github.com/smallbiznis/stencil/internal/designer/geometry"
)

var ErrUnknownComponentType = errors.New("unknown_component_type")

// Capabilities declare which configuration surfaces apply to a kind.
type Capabilities struct {
	HasFields   bool
	HasColumns  bool
	HasFreeText bool
}

// Definition is the static catalog entry for one component kind.
type Definition struct {
	Label          string
	DefaultSize    domain.Size
	DefaultStyles  domain.Styles
	Capabilities   Capabilities
	DefaultFields  []string
	DefaultColumns []string
	DefaultData    map[string]any
}

var definitions = map[domain.ComponentType]Definition{
	domain.TypeHeader: {
		Label:         "Header",
		DefaultSize:   domain.Size{Width: 100, Height: 12},
		DefaultStyles: domain.Styles{FontSize: "xl", FontWeight: "bold", TextAlign: "center"},
		Capabilities:  Capabilities{HasFreeText: true},
	},
	domain.TypeLogo: {
		Label:       "Logo",
		DefaultSize: domain.Size{Width: 18, Height: 10},
	},
	domain.TypeInvoiceDetails: {
		Label:         "Invoice Details",
		DefaultSize:   domain.Size{Width: 40, Height: 15},
		DefaultStyles: domain.Styles{FontSize: "sm", TextAlign: "left"},
		Capabilities:  Capabilities{HasFields: true},
		DefaultFields: []string{"invoiceNumber", "date", "dueDate"},
	},
	domain.TypeClientInfo: {
		Label:         "Client Info",
		DefaultSize:   domain.Size{Width: 40, Height: 18},
		DefaultStyles: domain.Styles{FontSize: "sm", TextAlign: "left"},
		Capabilities:  Capabilities{HasFields: true},
		DefaultFields: []string{"companyName", "address", "gstNumber"},
	},
	domain.TypeCompanyInfo: {
		Label:         "Company Info",
		DefaultSize:   domain.Size{Width: 40, Height: 18},
		DefaultStyles: domain.Styles{FontSize: "sm", TextAlign: "left"},
	},
	domain.TypeItemsTable: {
		Label:          "Items Table",
		DefaultSize:    domain.Size{Width: 100, Height: 30},
		DefaultStyles:  domain.Styles{FontSize: "sm"},
		Capabilities:   Capabilities{HasColumns: true},
		DefaultColumns: []string{"description", "quantity", "rate", "amount"},
	},
	domain.TypeTotals: {
		Label:         "Totals",
		DefaultSize:   domain.Size{Width: 35, Height: 15},
		DefaultStyles: domain.Styles{FontSize: "sm", TextAlign: "right"},
		Capabilities:  Capabilities{HasFields: true},
		DefaultFields: []string{"subtotal", "gstAmount", "total"},
	},
	domain.TypePaymentTerms: {
		Label:         "Payment Terms",
		DefaultSize:   domain.Size{Width: 45, Height: 12},
		DefaultStyles: domain.Styles{FontSize: "xs"},
		Capabilities:  Capabilities{HasFreeText: true},
	},
	domain.TypeBankDetails: {
		Label:         "Bank Details",
		DefaultSize:   domain.Size{Width: 45, Height: 15},
		DefaultStyles: domain.Styles{FontSize: "xs"},
		Capabilities:  Capabilities{HasFreeText: true},
	},
	domain.TypeNotes: {
		Label:         "Notes",
		DefaultSize:   domain.Size{Width: 100, Height: 10},
		DefaultStyles: domain.Styles{FontSize: "xs"},
		Capabilities:  Capabilities{HasFreeText: true},
	},
	domain.TypeFooter: {
		Label:         "Footer",
		DefaultSize:   domain.Size{Width: 100, Height: 8},
		DefaultStyles: domain.Styles{FontSize: "xs", TextAlign: "center"},
		Capabilities:  Capabilities{HasFreeText: true},
	},
	domain.TypeWatermark: {
		Label:         "Watermark",
		DefaultSize:   domain.Size{Width: 60, Height: 20},
		DefaultStyles: domain.Styles{Color: "#e5e7eb", TextAlign: "center"},
	},
	domain.TypeBarcode: {
		Label:       "Barcode",
		DefaultSize: domain.Size{Width: 25, Height: 8},
	},
	domain.TypeSignature: {
		Label:         "Signature",
		DefaultSize:   domain.Size{Width: 30, Height: 12},
		DefaultStyles: domain.Styles{TextAlign: "center"},
	},
	domain.TypeQRCode: {
		Label:       "QR Code",
		DefaultSize: domain.Size{Width: 15, Height: 10},
	},
	domain.TypeLineSeparator: {
		Label:       "Line Separator",
		DefaultSize: domain.Size{Width: 100, Height: 5},
	},
	domain.TypeTextBlock: {
		Label:         "Text Block",
		DefaultSize:   domain.Size{Width: 50, Height: 10},
		DefaultStyles: domain.Styles{FontSize: "sm", TextAlign: "left"},
		Capabilities:  Capabilities{HasFreeText: true},
	},
}

// DefinitionFor returns the catalog entry for a component type.
func DefinitionFor(t domain.ComponentType) (Definition, error) {
	def, ok := definitions[t]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownComponentType, t)
	}
	return def, nil
}

// Catalog instantiates components with freshly generated ids.
type Catalog struct {
	genID *snowflake.Node
}

// New constructs a Catalog backed by the given id generator.
func New(genID *snowflake.Node) *Catalog {
	return &Catalog{genID: genID}
}

// Instantiate builds a new component of the given type from its catalog
// defaults. Ids are never reused within the process lifetime.
func (c *Catalog) Instantiate(t domain.ComponentType) (domain.TemplateComponent, error) {
	def, err := DefinitionFor(t)
	if err != nil {
		return domain.TemplateComponent{}, err
	}

	comp := domain.TemplateComponent{
		ID:        c.genID.Generate().String(),
		Type:      t,
		Position:  domain.Position{X: 0, Y: 0},
		Size:      geometry.ClampSize(def.DefaultSize),
		Styles:    def.DefaultStyles,
		IsVisible: true,
		IsLocked:  false,
	}
	if def.Capabilities.HasFields {
		comp.Fields = append([]string(nil), def.DefaultFields...)
	}
	if def.Capabilities.HasColumns {
		comp.Columns = append([]string(nil), def.DefaultColumns...)
	}
	if len(def.DefaultData) > 0 {
		comp.Data = make(map[string]any, len(def.DefaultData))
		for k, v := range def.DefaultData {
			comp.Data[k] = v
		}
	}
	return comp, nil
}
