package domain

import (
	"errors"
	"reflect"
	"testing"
)

func sampleLayout() TemplateLayout {
	layout := NewLayout()
	layout.Components = []TemplateComponent{
		{
			ID: "c1", Type: TypeHeader,
			Position: Position{X: 0, Y: 0},
			Size:     Size{Width: 100, Height: 12},
			Styles:   Styles{FontSize: "xl", FontWeight: "bold", TextAlign: "center"},
			IsVisible: true,
			Data:      map[string]any{"title": "Acme Invoices"},
		},
		{
			ID: "c2", Type: TypeItemsTable,
			Position: Position{X: 0, Y: 40},
			Size:     Size{Width: 100, Height: 30},
			IsVisible: true,
			Columns:   []string{"description", "amount"},
		},
		{
			ID: "c3", Type: TypeTotals,
			Position: Position{X: 60, Y: 72},
			Size:     Size{Width: 35, Height: 12},
			IsVisible: true,
			IsLocked:  true,
			Fields:    []string{"subtotal", "gstAmount", "total"},
		},
	}
	return layout
}

func TestLayoutRoundTrip(t *testing.T) {
	original := sampleLayout()

	raw, err := MarshalLayout(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := UnmarshalLayout(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestRoundTripPreservesComponentOrder(t *testing.T) {
	original := sampleLayout()

	raw, err := MarshalLayout(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := UnmarshalLayout(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i, c := range original.Components {
		if decoded.Components[i].ID != c.ID {
			t.Fatalf("expected component %s at index %d, got %s", c.ID, i, decoded.Components[i].ID)
		}
	}
}

func TestUnmarshalKeepsUnknownTypes(t *testing.T) {
	raw := []byte(`{"components":[{"id":"x1","type":"unsupported-future-kind","position":{"x":0,"y":0},"size":{"width":10,"height":10},"isVisible":true}],"theme":{},"settings":{}}`)
	layout, err := UnmarshalLayout(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if layout.Components[0].Type != ComponentType("unsupported-future-kind") {
		t.Fatalf("expected unknown type preserved, got %s", layout.Components[0].Type)
	}
}

func TestUnmarshalEmptyDocument(t *testing.T) {
	if _, err := UnmarshalLayout(nil); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestValidateDuplicateID(t *testing.T) {
	layout := sampleLayout()
	layout.Components[1].ID = "c1"
	if err := layout.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestValidateGeometryBounds(t *testing.T) {
	layout := sampleLayout()
	layout.Components[0].Position.X = 50 // width 100, x must be 0
	if err := layout.Validate(); !errors.Is(err, ErrGeometryBounds) {
		t.Fatalf("expected ErrGeometryBounds, got %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleLayout()
	copied := original.Clone()

	copied.Components[0].Data["title"] = "Changed"
	copied.Components[2].Fields[0] = "changed"

	if original.Components[0].Data["title"] != "Acme Invoices" {
		t.Fatalf("clone shares data map with original")
	}
	if original.Components[2].Fields[0] != "subtotal" {
		t.Fatalf("clone shares fields slice with original")
	}
}
