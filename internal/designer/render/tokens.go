// Package render binds invoice data into layout components and turns
// them into target-specific output for the edit canvas and the print
// pipeline.
package render

import (
	"fmt"
	"strings"
)

// DataTokens is the normalized record bound into rendered components.
// Its shape is identical whether the values came from live records or
// from the canonical preview data, so the renderer never branches on
// provenance.
type DataTokens struct {
	Company CompanyTokens
	Invoice InvoiceTokens
	Client  ClientTokens
	Items   []ItemTokens
}

type CompanyTokens struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GST     string
	LogoURL string
}

type InvoiceTokens struct {
	Number    string
	Date      string
	DueDate   string
	Subtotal  float64
	GSTAmount float64
	Total     float64
	Notes     string
}

type ClientTokens struct {
	CompanyName string
	ContactName string
	Address     string
	GSTNumber   string
	Phone       string
	Email       string
}

type ItemTokens struct {
	Description string
	Quantity    float64
	Rate        float64
	HSNCode     string
	GSTRate     float64
	Amount      float64
}

// Source carries the raw records supplied by the data providers. The
// GST arithmetic is consumed as already-computed numbers, never redone
// here.
type Source struct {
	Company CompanyTokens
	Invoice InvoiceTokens
	Client  ClientTokens
	Items   []ItemTokens
}

// Resolve maps a source onto DataTokens. It is a pure function; the
// only work is normalization of whitespace-padded strings.
func Resolve(src Source) DataTokens {
	tok := DataTokens{
		Company: src.Company,
		Invoice: src.Invoice,
		Client:  src.Client,
		Items:   append([]ItemTokens(nil), src.Items...),
	}
	tok.Company.Name = strings.TrimSpace(tok.Company.Name)
	tok.Company.Address = strings.TrimSpace(tok.Company.Address)
	tok.Client.CompanyName = strings.TrimSpace(tok.Client.CompanyName)
	tok.Client.ContactName = strings.TrimSpace(tok.Client.ContactName)
	tok.Invoice.Number = strings.TrimSpace(tok.Invoice.Number)
	return tok
}

// PreviewSource is the canonical mock record used by the designer when
// no live invoice is attached.
func PreviewSource() Source {
	return Source{
		Company: CompanyTokens{
			Name:    "Orbit Trading Co.",
			Address: "14 MG Road, Bengaluru 560001",
			Phone:   "+91 98450 00000",
			Email:   "accounts@orbittrading.example",
			GST:     "29ABCDE1234F1Z5",
		},
		Invoice: InvoiceTokens{
			Number:    "INV-2024-0042",
			Date:      "2024-06-01",
			DueDate:   "2024-06-15",
			Subtotal:  12500,
			GSTAmount: 2250,
			Total:     14750,
			Notes:     "Thank you for your business.",
		},
		Client: ClientTokens{
			CompanyName: "Meridian Textiles Pvt Ltd",
			ContactName: "A. Sharma",
			Address:     "221 Park Street, Kolkata 700016",
			GSTNumber:   "19FGHIJ5678K2Z3",
			Phone:       "+91 98300 11111",
			Email:       "billing@meridiantextiles.example",
		},
		Items: []ItemTokens{
			{Description: "Cotton fabric (40s count)", Quantity: 50, Rate: 150, HSNCode: "5208", GSTRate: 5, Amount: 7500},
			{Description: "Dyeing service", Quantity: 1, Rate: 3000, HSNCode: "9988", GSTRate: 18, Amount: 3000},
			{Description: "Packing and freight", Quantity: 1, Rate: 2000, HSNCode: "9965", GSTRate: 18, Amount: 2000},
		},
	}
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatQuantity(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

func formatPercent(value float64) string {
	return formatQuantity(value) + "%"
}
