// Package service implements the invoice template service.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/stencil/internal/cache"
	"github.com/smallbiznis/stencil/internal/clock"
	designerdomain "github.com/smallbiznis/stencil/internal/designer/domain"
	"github.com/smallbiznis/stencil/internal/invoicetemplate/domain"
	"github.com/smallbiznis/stencil/internal/orgcontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const templateCacheTTL = 30 * time.Second

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository

	byID *cache.TTLCache[string, domain.Response]
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoicetemplate.service"),
		clock: p.Clock,
		repo:  p.Repo,
		byID:  cache.NewTTLCache[string, domain.Response](),
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.ListItem, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return nil, domain.ErrInvalidOrganization
	}
	if req.Type != "" && !domain.ValidTemplateType(req.Type) {
		return nil, domain.ErrInvalidTemplateType
	}

	templates, err := s.repo.List(ctx, s.db, orgID, req)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ListItem, 0, len(templates))
	for _, tmpl := range templates {
		items = append(items, domain.ListItem{
			ID:             tmpl.ID,
			TemplateName:   tmpl.TemplateName,
			TemplateType:   tmpl.TemplateType,
			PaperSize:      tmpl.PaperSize,
			Orientation:    tmpl.Orientation,
			IsDefault:      tmpl.IsDefault,
			IsActive:       tmpl.IsActive,
			ComponentCount: componentCount(tmpl.LayoutData),
			UpdatedAt:      tmpl.UpdatedAt,
		})
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return nil, domain.ErrInvalidOrganization
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.byID.Get(cacheKey(orgID, templateID)); ok {
		return &cached, nil
	}

	tmpl, err := s.repo.FindByID(ctx, s.db, orgID, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, domain.ErrTemplateNotFound
	}

	resp, err := toResponse(tmpl)
	if err != nil {
		return nil, err
	}
	s.byID.Set(cacheKey(orgID, templateID), *resp, templateCacheTTL)
	return resp, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return nil, domain.ErrInvalidOrganization
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	templateType := req.Type
	if templateType == "" {
		templateType = domain.TemplateTypeCustom
	}
	if !domain.ValidTemplateType(templateType) {
		return nil, domain.ErrInvalidTemplateType
	}

	layout := req.Layout
	if layout.Components == nil {
		layout = designerdomain.NewLayout()
	}
	raw, err := encodeLayout(layout)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	tmpl := &domain.InvoiceTemplate{
		ID:           uuid.NewString(),
		OrgID:        orgID,
		TemplateName: name,
		TemplateType: templateType,
		PaperSize:    defaultString(req.PaperSize, "a4"),
		Orientation:  defaultString(req.Orientation, "portrait"),
		Margins:      datatypes.JSONMap(req.Margins),
		LayoutData:   raw,
		IsDefault:    false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, tmpl); err != nil {
			return err
		}
		if req.IsDefault {
			if err := s.repo.ClearDefaults(ctx, tx, orgID); err != nil {
				return err
			}
			tmpl.IsDefault = true
			return s.repo.Update(ctx, tx, tmpl)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("template created",
		zap.String("template_id", tmpl.ID),
		zap.String("template_type", tmpl.TemplateType),
	)
	return toResponse(tmpl)
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return nil, domain.ErrInvalidOrganization
	}
	templateID, err := domain.ParseID(req.ID)
	if err != nil {
		return nil, err
	}

	tmpl, err := s.repo.FindByID(ctx, s.db, orgID, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, domain.ErrTemplateNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		tmpl.TemplateName = name
	}
	if req.Margins != nil {
		tmpl.Margins = datatypes.JSONMap(req.Margins)
	}
	if req.Layout != nil {
		raw, err := encodeLayout(*req.Layout)
		if err != nil {
			return nil, err
		}
		tmpl.LayoutData = raw
	}
	tmpl.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, tmpl); err != nil {
		return nil, err
	}
	s.byID.Delete(cacheKey(orgID, templateID))
	return toResponse(tmpl)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return domain.ErrInvalidOrganization
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.db, orgID, templateID); err != nil {
		return err
	}
	s.byID.Delete(cacheKey(orgID, templateID))
	return nil
}

// SetDefault makes one template the owner's default. The two-step
// clear-then-set runs in a single transaction so concurrent calls can
// never leave two defaults behind.
func (s *Service) SetDefault(ctx context.Context, id string) (*domain.Response, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return nil, domain.ErrInvalidOrganization
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	var tmpl *domain.InvoiceTemplate
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.repo.FindByID(ctx, tx, orgID, templateID)
		if err != nil {
			return err
		}
		if found == nil {
			return domain.ErrTemplateNotFound
		}
		if err := s.repo.ClearDefaults(ctx, tx, orgID); err != nil {
			return err
		}
		found.IsDefault = true
		found.UpdatedAt = s.clock.Now()
		if err := s.repo.Update(ctx, tx, found); err != nil {
			return err
		}
		tmpl = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.byID.Delete(cacheKey(orgID, templateID))
	return toResponse(tmpl)
}

// Duplicate deep-copies the layout document into a new template. The
// copy is never the default, whatever the source's flag was.
func (s *Service) Duplicate(ctx context.Context, id, newName string) (*domain.Response, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return nil, domain.ErrInvalidOrganization
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(newName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	source, err := s.repo.FindByID(ctx, s.db, orgID, templateID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.ErrTemplateNotFound
	}

	now := s.clock.Now()
	copyTmpl := &domain.InvoiceTemplate{
		ID:           uuid.NewString(),
		OrgID:        orgID,
		TemplateName: name,
		TemplateType: domain.TemplateTypeCustom,
		PaperSize:    source.PaperSize,
		Orientation:  source.Orientation,
		Margins:      cloneJSONMap(source.Margins),
		LayoutData:   append(datatypes.JSON(nil), source.LayoutData...),
		IsDefault:    false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, s.db, copyTmpl); err != nil {
		return nil, err
	}
	return toResponse(copyTmpl)
}

// SaveLayout is the editor's save path: it replaces only the layout
// document, validating invariants first. A failed write leaves both
// the stored row and the editing session untouched.
func (s *Service) SaveLayout(ctx context.Context, id string, layout designerdomain.TemplateLayout) error {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return domain.ErrInvalidOrganization
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	raw, err := encodeLayout(layout)
	if err != nil {
		return err
	}

	tmpl, err := s.repo.FindByID(ctx, s.db, orgID, templateID)
	if err != nil {
		return err
	}
	if tmpl == nil {
		return domain.ErrTemplateNotFound
	}

	tmpl.LayoutData = raw
	tmpl.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, tmpl); err != nil {
		return err
	}
	s.byID.Delete(cacheKey(orgID, templateID))
	return nil
}

func encodeLayout(layout designerdomain.TemplateLayout) (datatypes.JSON, error) {
	if err := layout.Validate(); err != nil {
		return nil, domain.ErrInvalidLayout
	}
	raw, err := designerdomain.MarshalLayout(layout)
	if err != nil {
		return nil, domain.ErrInvalidLayout
	}
	return datatypes.JSON(raw), nil
}

func toResponse(tmpl *domain.InvoiceTemplate) (*domain.Response, error) {
	layout, err := designerdomain.UnmarshalLayout(tmpl.LayoutData)
	if err != nil {
		return nil, domain.ErrInvalidLayout
	}
	return &domain.Response{
		ID:           tmpl.ID,
		OrgID:        tmpl.OrgID,
		TemplateName: tmpl.TemplateName,
		TemplateType: tmpl.TemplateType,
		PaperSize:    tmpl.PaperSize,
		Orientation:  tmpl.Orientation,
		Margins:      map[string]any(tmpl.Margins),
		Layout:       layout,
		IsDefault:    tmpl.IsDefault,
		IsActive:     tmpl.IsActive,
		CreatedAt:    tmpl.CreatedAt,
		UpdatedAt:    tmpl.UpdatedAt,
	}, nil
}

func componentCount(raw datatypes.JSON) int {
	if len(raw) == 0 {
		return 0
	}
	var doc struct {
		Components []json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0
	}
	return len(doc.Components)
}

func cloneJSONMap(in datatypes.JSONMap) datatypes.JSONMap {
	if in == nil {
		return nil
	}
	out := make(datatypes.JSONMap, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func cacheKey(orgID, templateID string) string {
	return orgID + ":" + templateID
}
