package editor

import (
	"errors"
	"testing"

	"github.com/smallbiznis/stencil/internal/designer/domain"
)

func testLayout() domain.TemplateLayout {
	layout := domain.NewLayout()
	layout.Components = []domain.TemplateComponent{
		{
			ID: "details", Type: domain.TypeInvoiceDetails,
			Position:  domain.Position{X: 10, Y: 10},
			Size:      domain.Size{Width: 40, Height: 15},
			IsVisible: true,
			Fields:    []string{"invoiceNumber", "date", "dueDate"},
		},
		{
			ID: "items", Type: domain.TypeItemsTable,
			Position:  domain.Position{X: 0, Y: 40},
			Size:      domain.Size{Width: 100, Height: 30},
			IsVisible: true,
			Columns:   []string{"description", "quantity", "amount"},
		},
		{
			ID: "locked", Type: domain.TypeLogo,
			Position:  domain.Position{X: 0, Y: 0},
			Size:      domain.Size{Width: 18, Height: 10},
			IsVisible: true,
			IsLocked:  true,
		},
	}
	return layout
}

func TestStoreOwnsACopy(t *testing.T) {
	layout := testLayout()
	store := NewStore(layout)

	if err := store.UpdatePosition("details", domain.Position{X: 50, Y: 50}); err != nil {
		t.Fatalf("update position: %v", err)
	}
	if layout.Components[0].Position.X != 10 {
		t.Fatalf("store mutated the caller's layout")
	}
}

func TestUpdatePositionClamps(t *testing.T) {
	store := NewStore(testLayout())

	if err := store.UpdatePosition("details", domain.Position{X: 95, Y: 95}); err != nil {
		t.Fatalf("update position: %v", err)
	}
	comp, err := store.Component("details")
	if err != nil {
		t.Fatalf("component: %v", err)
	}
	if comp.Position.X != 60 || comp.Position.Y != 85 {
		t.Fatalf("expected clamped (60, 85), got (%f, %f)", comp.Position.X, comp.Position.Y)
	}
}

func TestUpdateSizeReclampsPosition(t *testing.T) {
	store := NewStore(testLayout())

	if err := store.UpdatePosition("details", domain.Position{X: 60, Y: 10}); err != nil {
		t.Fatalf("update position: %v", err)
	}
	if err := store.UpdateSize("details", domain.Size{Width: 80, Height: 15}); err != nil {
		t.Fatalf("update size: %v", err)
	}
	comp, _ := store.Component("details")
	if comp.Position.X != 20 {
		t.Fatalf("expected position reclamped to 20, got %f", comp.Position.X)
	}
}

func TestUpdatePositionLocked(t *testing.T) {
	store := NewStore(testLayout())

	err := store.UpdatePosition("locked", domain.Position{X: 50, Y: 50})
	if !errors.Is(err, ErrComponentLocked) {
		t.Fatalf("expected ErrComponentLocked, got %v", err)
	}
}

func TestToggleFieldRemovesPreservingOrder(t *testing.T) {
	store := NewStore(testLayout())

	if err := store.ToggleField("details", "date"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	comp, _ := store.Component("details")
	want := []string{"invoiceNumber", "dueDate"}
	if len(comp.Fields) != 2 || comp.Fields[0] != want[0] || comp.Fields[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, comp.Fields)
	}
}

func TestToggleFieldTwiceRestoresMembership(t *testing.T) {
	store := NewStore(testLayout())

	if err := store.ToggleField("details", "date"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := store.ToggleField("details", "date"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	comp, _ := store.Component("details")
	// Reinsertion point is end-of-array, not the original slot.
	want := []string{"invoiceNumber", "dueDate", "date"}
	if len(comp.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %v", comp.Fields)
	}
	for i, key := range want {
		if comp.Fields[i] != key {
			t.Fatalf("expected %v, got %v", want, comp.Fields)
		}
	}
}

func TestToggleColumnAddsAtEnd(t *testing.T) {
	store := NewStore(testLayout())

	if err := store.ToggleColumn("items", "hsnCode"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	comp, _ := store.Component("items")
	if comp.Columns[len(comp.Columns)-1] != "hsnCode" {
		t.Fatalf("expected hsnCode appended, got %v", comp.Columns)
	}
}

func TestMergeStylesPartialUpdate(t *testing.T) {
	store := NewStore(testLayout())

	color := "#ff0000"
	if err := store.MergeStyles("details", StylePatch{Color: &color}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	size := "lg"
	if err := store.MergeStyles("details", StylePatch{FontSize: &size}); err != nil {
		t.Fatalf("merge: %v", err)
	}

	comp, _ := store.Component("details")
	if comp.Styles.Color != "#ff0000" {
		t.Fatalf("expected color kept across second patch, got %q", comp.Styles.Color)
	}
	if comp.Styles.FontSize != "lg" {
		t.Fatalf("expected font size applied, got %q", comp.Styles.FontSize)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	store := NewStore(testLayout())

	if err := store.Remove("items"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	layout := store.Layout()
	if len(layout.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(layout.Components))
	}
	if layout.Components[0].ID != "details" || layout.Components[1].ID != "locked" {
		t.Fatalf("expected order preserved, got %s, %s", layout.Components[0].ID, layout.Components[1].ID)
	}
}

func TestRemoveMissing(t *testing.T) {
	store := NewStore(testLayout())
	if err := store.Remove("ghost"); !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got %v", err)
	}
}

func TestSnapToGridApplies(t *testing.T) {
	layout := testLayout()
	layout.Settings.SnapToGrid = true
	layout.Settings.GridSize = 10
	store := NewStore(layout)

	if err := store.UpdatePosition("details", domain.Position{X: 23, Y: 37}); err != nil {
		t.Fatalf("update: %v", err)
	}
	comp, _ := store.Component("details")
	if comp.Position.X != 20 || comp.Position.Y != 40 {
		t.Fatalf("expected snapped (20, 40), got (%f, %f)", comp.Position.X, comp.Position.Y)
	}
}

func TestSetVisibleKeepsComponent(t *testing.T) {
	store := NewStore(testLayout())

	if err := store.SetVisible("details", false); err != nil {
		t.Fatalf("set visible: %v", err)
	}
	layout := store.Layout()
	if len(layout.Components) != 3 {
		t.Fatalf("hiding removed the component from the layout")
	}
	comp, _ := store.Component("details")
	if comp.IsVisible {
		t.Fatalf("expected component hidden")
	}
}
