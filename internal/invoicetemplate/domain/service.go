package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/stencil/internal/designer/domain"
)

type ListRequest struct {
	Name      string `form:"name"`
	Type      string `form:"type"`
	IsDefault *bool  `form:"is_default"`
}

type CreateRequest struct {
	Name        string                `json:"template_name"`
	Type        string                `json:"template_type"`
	PaperSize   string                `json:"paper_size"`
	Orientation string                `json:"orientation"`
	Margins     map[string]any        `json:"margins"`
	Layout      domain.TemplateLayout `json:"layout_data"`
	IsDefault   bool                  `json:"is_default"`
}

type UpdateRequest struct {
	ID      string                 `json:"id"`
	Name    *string                `json:"template_name"`
	Margins map[string]any         `json:"margins"`
	Layout  *domain.TemplateLayout `json:"layout_data"`
}

// Response is the full template view used by the editor and the
// print/export path.
type Response struct {
	ID           string                `json:"id"`
	OrgID        string                `json:"organization_id"`
	TemplateName string                `json:"template_name"`
	TemplateType string                `json:"template_type"`
	PaperSize    string                `json:"paper_size"`
	Orientation  string                `json:"orientation"`
	Margins      map[string]any        `json:"margins"`
	Layout       domain.TemplateLayout `json:"layout_data"`
	IsDefault    bool                  `json:"is_default"`
	IsActive     bool                  `json:"is_active"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ListItem is the trimmed view for the template list screen: metadata
// plus the component count, never the full document.
type ListItem struct {
	ID             string    `json:"id"`
	TemplateName   string    `json:"template_name"`
	TemplateType   string    `json:"template_type"`
	PaperSize      string    `json:"paper_size"`
	Orientation    string    `json:"orientation"`
	IsDefault      bool      `json:"is_default"`
	IsActive       bool      `json:"is_active"`
	ComponentCount int       `json:"component_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Service interface {
	List(ctx context.Context, req ListRequest) ([]ListItem, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) (*Response, error)
	Duplicate(ctx context.Context, id, newName string) (*Response, error)
	SaveLayout(ctx context.Context, id string, layout domain.TemplateLayout) error
}

// ParseID validates a canonical UUID string before any query runs.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidID           = errors.New("invalid_id")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidTemplateType = errors.New("invalid_template_type")
	ErrInvalidLayout       = errors.New("invalid_layout")
	ErrTemplateNotFound    = errors.New("template_not_found")
)
