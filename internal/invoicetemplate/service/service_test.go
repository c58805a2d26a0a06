package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/smallbiznis/stencil/internal/clock"
	designerdomain "github.com/smallbiznis/stencil/internal/designer/domain"
	"github.com/smallbiznis/stencil/internal/invoicetemplate/domain"
	"github.com/smallbiznis/stencil/internal/invoicetemplate/repository"
	"github.com/smallbiznis/stencil/internal/orgcontext"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testOrgID = "6c0b1d7e-4a11-4c43-9a75-0a3feba11d01"

func setupService(t *testing.T) (domain.Service, context.Context) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.InvoiceTemplate{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := NewService(ServiceParam{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.Fixed{At: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		Repo:  repository.Provide(),
	})
	ctx := orgcontext.WithOrgID(context.Background(), testOrgID)
	return svc, ctx
}

func createTemplate(t *testing.T, svc domain.Service, ctx context.Context, name string) *domain.Response {
	t.Helper()
	resp, err := svc.Create(ctx, domain.CreateRequest{Name: name})
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return resp
}

func TestCreateAndGet(t *testing.T) {
	svc, ctx := setupService(t)

	created := createTemplate(t, svc, ctx, "Standard")
	if created.TemplateType != domain.TemplateTypeCustom {
		t.Fatalf("expected custom type default, got %s", created.TemplateType)
	}
	if created.IsDefault {
		t.Fatalf("new template must not be default")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TemplateName != "Standard" || got.PaperSize != "a4" || got.Orientation != "portrait" {
		t.Fatalf("unexpected template %+v", got)
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc, ctx := setupService(t)

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "   "})
	if !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestMalformedIDFailsFast(t *testing.T) {
	svc, ctx := setupService(t)

	if _, err := svc.GetByID(ctx, "not-a-uuid"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := svc.Delete(ctx, "12345"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.SetDefault(ctx, ""); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestMissingOrganization(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.List(context.Background(), domain.ListRequest{})
	if !errors.Is(err, domain.ErrInvalidOrganization) {
		t.Fatalf("expected ErrInvalidOrganization, got %v", err)
	}
}

func TestSetDefaultSingleDefaultInvariant(t *testing.T) {
	svc, ctx := setupService(t)

	a := createTemplate(t, svc, ctx, "A")
	b := createTemplate(t, svc, ctx, "B")
	c := createTemplate(t, svc, ctx, "C")

	for _, id := range []string{a.ID, b.ID, c.ID, b.ID} {
		if _, err := svc.SetDefault(ctx, id); err != nil {
			t.Fatalf("set default %s: %v", id, err)
		}
	}

	items, err := svc.List(ctx, domain.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defaults := 0
	for _, item := range items {
		if item.IsDefault {
			defaults++
			if item.ID != b.ID {
				t.Fatalf("expected %s to be default, got %s", b.ID, item.ID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestDuplicateDeepCopiesLayout(t *testing.T) {
	svc, ctx := setupService(t)

	layout := designerdomain.NewLayout()
	layout.Components = []designerdomain.TemplateComponent{
		{
			ID: "h1", Type: designerdomain.TypeHeader,
			Position: designerdomain.Position{X: 0, Y: 0},
			Size:     designerdomain.Size{Width: 100, Height: 12},
			IsVisible: true,
			Data:      map[string]any{"title": "Source"},
		},
	}
	source, err := svc.Create(ctx, domain.CreateRequest{Name: "Standard", Layout: layout})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SetDefault(ctx, source.ID); err != nil {
		t.Fatalf("set default: %v", err)
	}

	dup, err := svc.Duplicate(ctx, source.ID, "Standard (Copy)")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.ID == source.ID {
		t.Fatalf("expected distinct id")
	}
	if dup.IsDefault {
		t.Fatalf("duplicate must not inherit the default flag")
	}
	if dup.TemplateName != "Standard (Copy)" {
		t.Fatalf("expected new name, got %s", dup.TemplateName)
	}
	if len(dup.Layout.Components) != 1 || dup.Layout.Components[0].Data["title"] != "Source" {
		t.Fatalf("expected identical layout document, got %+v", dup.Layout)
	}
}

func TestSaveLayoutRoundTrip(t *testing.T) {
	svc, ctx := setupService(t)
	created := createTemplate(t, svc, ctx, "Standard")

	layout := designerdomain.NewLayout()
	layout.Components = []designerdomain.TemplateComponent{
		{
			ID: "n1", Type: designerdomain.TypeNotes,
			Position: designerdomain.Position{X: 0, Y: 90},
			Size:     designerdomain.Size{Width: 100, Height: 10},
			IsVisible: true,
			Data:      map[string]any{"content": "Payment due in 15 days"},
		},
	}
	if err := svc.SaveLayout(ctx, created.ID, layout); err != nil {
		t.Fatalf("save layout: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Layout.Components) != 1 || got.Layout.Components[0].ID != "n1" {
		t.Fatalf("expected saved layout back, got %+v", got.Layout)
	}
}

func TestSaveLayoutRejectsInvalidGeometry(t *testing.T) {
	svc, ctx := setupService(t)
	created := createTemplate(t, svc, ctx, "Standard")

	layout := designerdomain.NewLayout()
	layout.Components = []designerdomain.TemplateComponent{
		{
			ID: "bad", Type: designerdomain.TypeNotes,
			Position: designerdomain.Position{X: 90, Y: 0},
			Size:     designerdomain.Size{Width: 50, Height: 10},
			IsVisible: true,
		},
	}
	if err := svc.SaveLayout(ctx, created.ID, layout); !errors.Is(err, domain.ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}

	// The stored document is untouched by the rejected save.
	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Layout.Components) != 0 {
		t.Fatalf("expected stored layout unchanged, got %+v", got.Layout)
	}
}

func TestListReportsComponentCountOnly(t *testing.T) {
	svc, ctx := setupService(t)

	layout := designerdomain.NewLayout()
	layout.Components = []designerdomain.TemplateComponent{
		{ID: "a", Type: designerdomain.TypeHeader, Size: designerdomain.Size{Width: 100, Height: 12}, IsVisible: true},
		{ID: "b", Type: designerdomain.TypeFooter, Size: designerdomain.Size{Width: 100, Height: 8}, IsVisible: true},
	}
	if _, err := svc.Create(ctx, domain.CreateRequest{Name: "Standard", Layout: layout}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx, domain.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 template, got %d", len(items))
	}
	if items[0].ComponentCount != 2 {
		t.Fatalf("expected component count 2, got %d", items[0].ComponentCount)
	}
}

func TestDeleteMissingTemplate(t *testing.T) {
	svc, ctx := setupService(t)

	err := svc.Delete(ctx, "a2b31c8e-92f4-44a5-bb6e-9d5f3a1b2c3d")
	if !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
