package render

import (
	"strings"
	"testing"

	"github.com/smallbiznis/stencil/internal/designer/domain"
)

func htmlTestLayout() domain.TemplateLayout {
	layout := domain.NewLayout()
	layout.Components = []domain.TemplateComponent{
		{
			ID: "h", Type: domain.TypeHeader,
			Position: domain.Position{X: 0, Y: 0},
			Size:     domain.Size{Width: 100, Height: 12},
			Styles:   domain.Styles{FontSize: "xl", FontWeight: "bold"},
			IsVisible: true,
			Data:      map[string]any{"title": "Acme Invoices"},
		},
		{
			ID: "i", Type: domain.TypeItemsTable,
			Position: domain.Position{X: 0, Y: 40},
			Size:     domain.Size{Width: 100, Height: 30},
			IsVisible: true,
			Columns:   []string{"description", "amount"},
		},
	}
	return layout
}

func TestEmitHTMLContainsContent(t *testing.T) {
	r := NewHTMLRenderer()
	out, err := r.EmitHTML(htmlTestLayout(), previewTokens(), TargetEdit)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	for _, want := range []string{"Acme Invoices", "INVOICE", "Cotton fabric (40s count)", "left: 0%", "width: 100%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestEmitHTMLPrintPalette(t *testing.T) {
	layout := htmlTestLayout()
	layout.Components[0].Styles.Color = "#ff0000"

	r := NewHTMLRenderer()
	out, err := r.EmitHTML(layout, previewTokens(), TargetPrint)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if strings.Contains(out, "#ff0000") {
		t.Fatalf("expected print output to drop configured colors")
	}
	if !strings.Contains(out, "color: #000000") {
		t.Fatalf("expected forced black text in print output")
	}
}

func TestEmitHTMLSanitizesTheme(t *testing.T) {
	layout := htmlTestLayout()
	layout.Theme.FontFamily = `"><script>alert(1)</script>`
	layout.Theme.TextColor = "red; background: url(evil)"

	r := NewHTMLRenderer()
	out, err := r.EmitHTML(layout, previewTokens(), TargetEdit)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if strings.Contains(out, "script>") {
		t.Fatalf("expected font family sanitized")
	}
	if strings.Contains(out, "url(evil)") {
		t.Fatalf("expected text color sanitized")
	}
}

func TestEmitHTMLSkipsInvisibleComponents(t *testing.T) {
	layout := htmlTestLayout()
	layout.Components[1].IsVisible = false

	r := NewHTMLRenderer()
	out, err := r.EmitHTML(layout, previewTokens(), TargetPrint)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if strings.Contains(out, "Cotton fabric") {
		t.Fatalf("expected hidden items table to be skipped")
	}
}
