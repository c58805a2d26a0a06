// Package domain contains the serializable invoice template layout model.
package domain

// ComponentType identifies one kind of layout component.
type ComponentType string

const (
	TypeHeader         ComponentType = "header"
	TypeLogo           ComponentType = "logo"
	TypeInvoiceDetails ComponentType = "invoice-details"
	TypeClientInfo     ComponentType = "client-info"
	TypeCompanyInfo    ComponentType = "company-info"
	TypeItemsTable     ComponentType = "items-table"
	TypeTotals         ComponentType = "totals"
	TypePaymentTerms   ComponentType = "payment-terms"
	TypeBankDetails    ComponentType = "bank-details"
	TypeNotes          ComponentType = "notes"
	TypeFooter         ComponentType = "footer"
	TypeWatermark      ComponentType = "watermark"
	TypeBarcode        ComponentType = "barcode"
	TypeSignature      ComponentType = "signature"
	TypeQRCode         ComponentType = "qr-code"
	TypeLineSeparator  ComponentType = "line-separator"
	TypeTextBlock      ComponentType = "text-block"
)

// ComponentTypes lists every kind the renderer supports, in palette order.
var ComponentTypes = []ComponentType{
	TypeHeader,
	TypeLogo,
	TypeInvoiceDetails,
	TypeClientInfo,
	TypeCompanyInfo,
	TypeItemsTable,
	TypeTotals,
	TypePaymentTerms,
	TypeBankDetails,
	TypeNotes,
	TypeFooter,
	TypeWatermark,
	TypeBarcode,
	TypeSignature,
	TypeQRCode,
	TypeLineSeparator,
	TypeTextBlock,
}

// Position locates a component on the canvas as percentages of its
// width and height.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a component extent as percentages of the canvas dimensions.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Styles holds the optional visual attributes of a component. Empty
// fields mean "unset"; partial updates leave them untouched.
type Styles struct {
	FontSize        string `json:"fontSize,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextAlign       string `json:"textAlign,omitempty"`
	Border          string `json:"border,omitempty"`
}

// TemplateComponent is one positioned, typed, styled element of a layout.
type TemplateComponent struct {
	ID        string         `json:"id"`
	Type      ComponentType  `json:"type"`
	Position  Position       `json:"position"`
	Size      Size           `json:"size"`
	Styles    Styles         `json:"styles"`
	IsVisible bool           `json:"isVisible"`
	IsLocked  bool           `json:"isLocked"`
	Fields    []string       `json:"fields,omitempty"`
	Columns   []string       `json:"columns,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// Theme holds the layout-wide palette and typography.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	TextColor      string `json:"textColor"`
	BorderColor    string `json:"borderColor"`
	FontFamily     string `json:"fontFamily"`
}

// CanvasSettings control the editing surface.
type CanvasSettings struct {
	ShowGrid   bool    `json:"showGrid"`
	GridSize   float64 `json:"gridSize"`
	SnapToGrid bool    `json:"snapToGrid"`
}

// TemplateLayout is the full serializable document for one invoice
// template. Component order is paint order and must survive persistence.
type TemplateLayout struct {
	Components []TemplateComponent `json:"components"`
	Theme      Theme               `json:"theme"`
	Settings   CanvasSettings      `json:"settings"`
}

// DefaultTheme is applied to layouts created from scratch.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor:   "#1e3a8a",
		SecondaryColor: "#64748b",
		TextColor:      "#111827",
		BorderColor:    "#e5e7eb",
		FontFamily:     "Inter",
	}
}

// DefaultCanvasSettings is applied to layouts created from scratch.
func DefaultCanvasSettings() CanvasSettings {
	return CanvasSettings{
		ShowGrid:   true,
		GridSize:   5,
		SnapToGrid: false,
	}
}

// NewLayout returns an empty layout with default theme and settings.
func NewLayout() TemplateLayout {
	return TemplateLayout{
		Components: []TemplateComponent{},
		Theme:      DefaultTheme(),
		Settings:   DefaultCanvasSettings(),
	}
}

// KnownType reports whether t is part of the supported component union.
func KnownType(t ComponentType) bool {
	for _, known := range ComponentTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the component.
func (c TemplateComponent) Clone() TemplateComponent {
	out := c
	if c.Fields != nil {
		out.Fields = append([]string(nil), c.Fields...)
	}
	if c.Columns != nil {
		out.Columns = append([]string(nil), c.Columns...)
	}
	if c.Data != nil {
		out.Data = cloneMap(c.Data)
	}
	return out
}

// Clone returns a deep copy of the layout.
func (l TemplateLayout) Clone() TemplateLayout {
	out := l
	out.Components = make([]TemplateComponent, len(l.Components))
	for i, c := range l.Components {
		out.Components[i] = c.Clone()
	}
	return out
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		switch typed := v.(type) {
		case map[string]any:
			out[k] = cloneMap(typed)
		case []any:
			items := make([]any, len(typed))
			for i, entry := range typed {
				if nested, ok := entry.(map[string]any); ok {
					items[i] = cloneMap(nested)
				} else {
					items[i] = entry
				}
			}
			out[k] = items
		default:
			out[k] = v
		}
	}
	return out
}
