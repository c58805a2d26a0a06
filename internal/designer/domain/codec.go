package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyDocument  = errors.New("empty_layout_document")
	ErrDuplicateID    = errors.New("duplicate_component_id")
	ErrMissingID      = errors.New("missing_component_id")
	ErrGeometryBounds = errors.New("geometry_out_of_bounds")
)

// MarshalLayout serializes a layout to its opaque JSON document form.
// The component array order is the paint order and is preserved verbatim.
func MarshalLayout(layout TemplateLayout) ([]byte, error) {
	if layout.Components == nil {
		layout.Components = []TemplateComponent{}
	}
	return json.Marshal(layout)
}

// UnmarshalLayout parses a stored layout document. Unknown component
// types are kept as-is so that documents written by newer versions still
// load; the renderer degrades them to a placeholder.
func UnmarshalLayout(raw []byte) (TemplateLayout, error) {
	if len(raw) == 0 {
		return TemplateLayout{}, ErrEmptyDocument
	}
	var layout TemplateLayout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return TemplateLayout{}, fmt.Errorf("decode layout: %w", err)
	}
	if layout.Components == nil {
		layout.Components = []TemplateComponent{}
	}
	return layout, nil
}

// Validate checks the structural invariants of a layout: component ids
// present and unique, geometry within canvas bounds.
func (l TemplateLayout) Validate() error {
	seen := make(map[string]struct{}, len(l.Components))
	for _, c := range l.Components {
		if c.ID == "" {
			return ErrMissingID
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Size.Width < 5 || c.Size.Width > 100 || c.Size.Height < 5 || c.Size.Height > 100 {
			return fmt.Errorf("%w: component %s size %.2fx%.2f", ErrGeometryBounds, c.ID, c.Size.Width, c.Size.Height)
		}
		if c.Position.X < 0 || c.Position.X > 100-c.Size.Width ||
			c.Position.Y < 0 || c.Position.Y > 100-c.Size.Height {
			return fmt.Errorf("%w: component %s at (%.2f, %.2f)", ErrGeometryBounds, c.ID, c.Position.X, c.Position.Y)
		}
	}
	return nil
}
