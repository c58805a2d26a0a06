package render

import (
	"github.com/smallbiznis/stencil/internal/designer/domain"
)

// Target selects the output pipeline. Both targets share one content
// pass; only the style layer differs.
type Target string

const (
	TargetEdit  Target = "edit"
	TargetPrint Target = "print"
)

// FragmentKind classifies what a rendered component contains.
type FragmentKind string

const (
	KindTitle       FragmentKind = "title"
	KindLines       FragmentKind = "lines"
	KindTable       FragmentKind = "table"
	KindText        FragmentKind = "text"
	KindGraphic     FragmentKind = "graphic"
	KindSeparator   FragmentKind = "separator"
	KindPlaceholder FragmentKind = "placeholder"
)

// Line is one labelled value inside a lines fragment.
type Line struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is the rendered items grid: one header cell per configured
// column, one row per invoice item, in configured order.
type Table struct {
	Columns []string   `json:"columns"`
	Header  []string   `json:"header"`
	Rows    [][]string `json:"rows"`
}

// FragmentStyle is the presentation layer. For the print target color
// and background are forced to black on white; everything else is
// shared with the edit target.
type FragmentStyle struct {
	FontSize        string `json:"fontSize,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
	TextAlign       string `json:"textAlign,omitempty"`
	Border          string `json:"border,omitempty"`
}

// Fragment is the rendered form of one component. The content fields
// (TitleLines, Lines, Table, Text, Placeholder) are byte-identical
// across targets; Style is the only divergence.
type Fragment struct {
	ComponentID string               `json:"componentId"`
	Type        domain.ComponentType `json:"type"`
	Kind        FragmentKind         `json:"kind"`
	Position    domain.Position      `json:"position"`
	Size        domain.Size          `json:"size"`
	TitleLines  []string             `json:"titleLines,omitempty"`
	Lines       []Line               `json:"lines,omitempty"`
	Table       *Table               `json:"table,omitempty"`
	Text        string               `json:"text,omitempty"`
	Placeholder string               `json:"placeholder,omitempty"`
	Style       FragmentStyle        `json:"style"`
}

type contentFunc func(c domain.TemplateComponent, tok DataTokens) Fragment

// dispatch is total over the known type union; anything outside it
// falls through to renderUnknown so a forward-incompatible document
// degrades visibly instead of failing.
var dispatch = map[domain.ComponentType]contentFunc{
	domain.TypeHeader:         renderHeader,
	domain.TypeLogo:           graphicRenderer("Logo"),
	domain.TypeInvoiceDetails: linesRenderer(invoiceDetailLine),
	domain.TypeClientInfo:     linesRenderer(clientInfoLine),
	domain.TypeCompanyInfo:    renderCompanyInfo,
	domain.TypeItemsTable:     renderItemsTable,
	domain.TypeTotals:         linesRenderer(totalsLine),
	domain.TypePaymentTerms:   textRenderer,
	domain.TypeBankDetails:    textRenderer,
	domain.TypeNotes:          textRenderer,
	domain.TypeFooter:         textRenderer,
	domain.TypeWatermark:      graphicRenderer("Watermark"),
	domain.TypeBarcode:        graphicRenderer("Barcode"),
	domain.TypeSignature:      graphicRenderer("Authorized Signature"),
	domain.TypeQRCode:         graphicRenderer("QR Code"),
	domain.TypeLineSeparator:  renderSeparator,
	domain.TypeTextBlock:      textRenderer,
}

// Render produces the fragment for one component. It never panics: an
// unknown component type yields the fallback placeholder.
func Render(c domain.TemplateComponent, tok DataTokens, target Target) Fragment {
	fn, ok := dispatch[c.Type]
	if !ok {
		fn = renderUnknown
	}
	frag := fn(c, tok)
	frag.ComponentID = c.ID
	frag.Type = c.Type
	frag.Position = c.Position
	frag.Size = c.Size
	frag.Style = styleFor(c, target)
	return frag
}

// RenderDocument renders a whole layout in paint order, skipping
// invisible components but keeping them in the layout.
func RenderDocument(layout domain.TemplateLayout, tok DataTokens, target Target) []Fragment {
	out := make([]Fragment, 0, len(layout.Components))
	for _, c := range layout.Components {
		if !c.IsVisible {
			continue
		}
		out = append(out, Render(c, tok, target))
	}
	return out
}

func styleFor(c domain.TemplateComponent, target Target) FragmentStyle {
	style := FragmentStyle{
		FontSize:   c.Styles.FontSize,
		FontWeight: c.Styles.FontWeight,
		FontFamily: c.Styles.FontFamily,
		TextAlign:  c.Styles.TextAlign,
		Border:     c.Styles.Border,
	}
	if target == TargetPrint {
		// Forced palette for faithful physical printing.
		style.Color = "#000000"
		style.BackgroundColor = "#ffffff"
		return style
	}
	style.Color = c.Styles.Color
	style.BackgroundColor = c.Styles.BackgroundColor
	if style.Color == "" {
		style.Color = "#111827"
	}
	if style.BackgroundColor == "" {
		style.BackgroundColor = "transparent"
	}
	return style
}

func renderHeader(c domain.TemplateComponent, tok DataTokens) Fragment {
	title := tok.Company.Name
	if c.Data != nil {
		if v, ok := c.Data["title"].(string); ok && v != "" {
			title = v
		}
	}
	return Fragment{Kind: KindTitle, TitleLines: []string{title, "INVOICE"}}
}

func renderCompanyInfo(_ domain.TemplateComponent, tok DataTokens) Fragment {
	lines := []Line{
		{Key: "name", Label: "Company", Value: tok.Company.Name},
		{Key: "address", Label: "Address", Value: tok.Company.Address},
		{Key: "phone", Label: "Phone", Value: tok.Company.Phone},
		{Key: "email", Label: "Email", Value: tok.Company.Email},
		{Key: "gst", Label: "GSTIN", Value: tok.Company.GST},
	}
	return Fragment{Kind: KindLines, Lines: lines}
}

// linesRenderer emits one line per configured field key, in array
// order; keys missing from the field list are omitted entirely, and
// unknown keys are skipped.
func linesRenderer(lookup func(key string, tok DataTokens) (Line, bool)) contentFunc {
	return func(c domain.TemplateComponent, tok DataTokens) Fragment {
		lines := make([]Line, 0, len(c.Fields))
		for _, key := range c.Fields {
			if line, ok := lookup(key, tok); ok {
				lines = append(lines, line)
			}
		}
		return Fragment{Kind: KindLines, Lines: lines}
	}
}

func invoiceDetailLine(key string, tok DataTokens) (Line, bool) {
	switch key {
	case "invoiceNumber":
		return Line{Key: key, Label: "Invoice #", Value: tok.Invoice.Number}, true
	case "date":
		return Line{Key: key, Label: "Date", Value: tok.Invoice.Date}, true
	case "dueDate":
		return Line{Key: key, Label: "Due Date", Value: tok.Invoice.DueDate}, true
	default:
		return Line{}, false
	}
}

func clientInfoLine(key string, tok DataTokens) (Line, bool) {
	switch key {
	case "companyName":
		return Line{Key: key, Label: "Bill To", Value: tok.Client.CompanyName}, true
	case "contactName":
		return Line{Key: key, Label: "Contact", Value: tok.Client.ContactName}, true
	case "address":
		return Line{Key: key, Label: "Address", Value: tok.Client.Address}, true
	case "gstNumber":
		return Line{Key: key, Label: "GSTIN", Value: tok.Client.GSTNumber}, true
	case "phone":
		return Line{Key: key, Label: "Phone", Value: tok.Client.Phone}, true
	case "email":
		return Line{Key: key, Label: "Email", Value: tok.Client.Email}, true
	default:
		return Line{}, false
	}
}

func totalsLine(key string, tok DataTokens) (Line, bool) {
	switch key {
	case "subtotal":
		return Line{Key: key, Label: "Subtotal", Value: formatAmount(tok.Invoice.Subtotal)}, true
	case "gstAmount":
		return Line{Key: key, Label: "GST", Value: formatAmount(tok.Invoice.GSTAmount)}, true
	case "total":
		return Line{Key: key, Label: "Total", Value: formatAmount(tok.Invoice.Total)}, true
	default:
		return Line{}, false
	}
}

var columnLabels = map[string]string{
	"description": "Description",
	"quantity":    "Qty",
	"rate":        "Rate",
	"hsnCode":     "HSN",
	"gstRate":     "GST %",
	"amount":      "Amount",
}

func renderItemsTable(c domain.TemplateComponent, tok DataTokens) Fragment {
	columns := make([]string, 0, len(c.Columns))
	header := make([]string, 0, len(c.Columns))
	for _, key := range c.Columns {
		label, ok := columnLabels[key]
		if !ok {
			continue
		}
		columns = append(columns, key)
		header = append(header, label)
	}

	rows := make([][]string, 0, len(tok.Items))
	for _, item := range tok.Items {
		row := make([]string, 0, len(columns))
		for _, key := range columns {
			row = append(row, itemCell(key, item))
		}
		rows = append(rows, row)
	}
	return Fragment{Kind: KindTable, Table: &Table{Columns: columns, Header: header, Rows: rows}}
}

func itemCell(key string, item ItemTokens) string {
	switch key {
	case "description":
		return item.Description
	case "quantity":
		return formatQuantity(item.Quantity)
	case "rate":
		return formatAmount(item.Rate)
	case "hsnCode":
		return item.HSNCode
	case "gstRate":
		return formatPercent(item.GSTRate)
	case "amount":
		return formatAmount(item.Amount)
	default:
		return ""
	}
}

func textRenderer(c domain.TemplateComponent, _ DataTokens) Fragment {
	content := ""
	if c.Data != nil {
		if v, ok := c.Data["content"].(string); ok {
			content = v
		}
	}
	return Fragment{Kind: KindText, Text: content}
}

func graphicRenderer(placeholder string) contentFunc {
	return func(domain.TemplateComponent, DataTokens) Fragment {
		return Fragment{Kind: KindGraphic, Placeholder: placeholder}
	}
}

func renderSeparator(domain.TemplateComponent, DataTokens) Fragment {
	return Fragment{Kind: KindSeparator}
}

func renderUnknown(domain.TemplateComponent, DataTokens) Fragment {
	return Fragment{Kind: KindPlaceholder, Placeholder: "Unknown component"}
}

// TextContent flattens every visible textual value of a fragment, in
// render order. The edit/print equality contract is stated in terms of
// this sequence.
func (f Fragment) TextContent() []string {
	var out []string
	out = append(out, f.TitleLines...)
	for _, line := range f.Lines {
		out = append(out, line.Label, line.Value)
	}
	if f.Table != nil {
		out = append(out, f.Table.Header...)
		for _, row := range f.Table.Rows {
			out = append(out, row...)
		}
	}
	if f.Text != "" {
		out = append(out, f.Text)
	}
	if f.Placeholder != "" {
		out = append(out, f.Placeholder)
	}
	return out
}
