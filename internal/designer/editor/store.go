// Package editor holds the mutable editing session state for one
// template layout: the component store, selection, property edits,
// pointer dragging and the save gate.
package editor

import (
	"errors"

	"github.com/smallbiznis/stencil/internal/designer/domain"
	"github.com/smallbiznis/stencil/internal/designer/geometry"
)

var (
	ErrComponentNotFound = errors.New("component_not_found")
	ErrComponentLocked   = errors.New("component_locked")
)

// Store owns the working copy of a TemplateLayout. All geometry writes
// pass through the clamp functions; raw values never land in the layout.
type Store struct {
	layout domain.TemplateLayout
}

// NewStore wraps a layout for editing. The store takes ownership of a
// deep copy so a failed save never corrupts the caller's value.
func NewStore(layout domain.TemplateLayout) *Store {
	return &Store{layout: layout.Clone()}
}

// Layout returns a deep copy of the current working layout.
func (s *Store) Layout() domain.TemplateLayout {
	return s.layout.Clone()
}

// Theme returns the working theme.
func (s *Store) Theme() domain.Theme { return s.layout.Theme }

// SetTheme replaces the working theme.
func (s *Store) SetTheme(theme domain.Theme) { s.layout.Theme = theme }

// Settings returns the working canvas settings.
func (s *Store) Settings() domain.CanvasSettings { return s.layout.Settings }

// SetSettings replaces the working canvas settings.
func (s *Store) SetSettings(settings domain.CanvasSettings) { s.layout.Settings = settings }

// Add appends a component to the end of the paint order.
func (s *Store) Add(comp domain.TemplateComponent) {
	comp.Size = geometry.ClampSize(comp.Size)
	comp.Position = geometry.ClampPosition(comp.Position, comp.Size)
	s.layout.Components = append(s.layout.Components, comp)
}

// Remove deletes a component by id, preserving the order of the rest.
func (s *Store) Remove(id string) error {
	for i, c := range s.layout.Components {
		if c.ID == id {
			s.layout.Components = append(s.layout.Components[:i], s.layout.Components[i+1:]...)
			return nil
		}
	}
	return ErrComponentNotFound
}

// Component returns a copy of the component with the given id.
func (s *Store) Component(id string) (domain.TemplateComponent, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.TemplateComponent{}, ErrComponentNotFound
	}
	return s.layout.Components[idx].Clone(), nil
}

// UpdatePosition moves a component, clamping to the canvas. Locked
// components are only movable through explicit unlock.
func (s *Store) UpdatePosition(id string, pos domain.Position) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	c := &s.layout.Components[idx]
	if c.IsLocked {
		return ErrComponentLocked
	}
	if s.layout.Settings.SnapToGrid {
		pos = geometry.Snap(pos, s.layout.Settings.GridSize)
	}
	c.Position = geometry.ClampPosition(pos, c.Size)
	return nil
}

// UpdateSize resizes a component; the position is re-clamped afterwards
// so the component cannot end up hanging off the canvas.
func (s *Store) UpdateSize(id string, size domain.Size) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	c := &s.layout.Components[idx]
	if c.IsLocked {
		return ErrComponentLocked
	}
	c.Size = geometry.ClampSize(size)
	c.Position = geometry.ClampPosition(c.Position, c.Size)
	return nil
}

// StylePatch carries a partial style update; nil fields are untouched.
type StylePatch struct {
	FontSize        *string
	FontWeight      *string
	FontFamily      *string
	Color           *string
	BackgroundColor *string
	TextAlign       *string
	Border          *string
}

// MergeStyles applies a partial style update to one component.
func (s *Store) MergeStyles(id string, patch StylePatch) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	st := &s.layout.Components[idx].Styles
	if patch.FontSize != nil {
		st.FontSize = *patch.FontSize
	}
	if patch.FontWeight != nil {
		st.FontWeight = *patch.FontWeight
	}
	if patch.FontFamily != nil {
		st.FontFamily = *patch.FontFamily
	}
	if patch.Color != nil {
		st.Color = *patch.Color
	}
	if patch.BackgroundColor != nil {
		st.BackgroundColor = *patch.BackgroundColor
	}
	if patch.TextAlign != nil {
		st.TextAlign = *patch.TextAlign
	}
	if patch.Border != nil {
		st.Border = *patch.Border
	}
	return nil
}

// ToggleField adds the key to the end of the component's field list if
// absent, or removes it while preserving the order of the rest.
func (s *Store) ToggleField(id, key string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	s.layout.Components[idx].Fields = toggle(s.layout.Components[idx].Fields, key)
	return nil
}

// ToggleColumn has the same set-toggle semantics as ToggleField for the
// items-table column list.
func (s *Store) ToggleColumn(id, key string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	s.layout.Components[idx].Columns = toggle(s.layout.Components[idx].Columns, key)
	return nil
}

// SetData stores one key of the component's free-form payload.
func (s *Store) SetData(id, key string, value any) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	c := &s.layout.Components[idx]
	if c.Data == nil {
		c.Data = map[string]any{}
	}
	c.Data[key] = value
	return nil
}

// SetVisible flips rendering visibility; the component stays in the layout.
func (s *Store) SetVisible(id string, visible bool) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	s.layout.Components[idx].IsVisible = visible
	return nil
}

// SetLocked flips the drag/resize lock.
func (s *Store) SetLocked(id string, locked bool) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrComponentNotFound
	}
	s.layout.Components[idx].IsLocked = locked
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, c := range s.layout.Components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func toggle(list []string, key string) []string {
	for i, entry := range list {
		if entry == key {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, key)
}
