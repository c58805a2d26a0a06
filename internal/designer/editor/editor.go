package editor

import (
	"github.com/smallbiznis/stencil/internal/designer/domain"
)

// Editor layers single-component selection over a Store. Property edits
// from the inspector panel go through here so they always target the
// current selection.
type Editor struct {
	store    *Store
	selected string
}

// NewEditor wraps a store with empty selection.
func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// Select marks a component as the inspector target.
func (e *Editor) Select(id string) error {
	if _, err := e.store.Component(id); err != nil {
		return err
	}
	e.selected = id
	return nil
}

// Deselect clears the selection.
func (e *Editor) Deselect() { e.selected = "" }

// Selected returns the selected component, or ok=false when nothing is
// selected.
func (e *Editor) Selected() (domain.TemplateComponent, bool) {
	if e.selected == "" {
		return domain.TemplateComponent{}, false
	}
	comp, err := e.store.Component(e.selected)
	if err != nil {
		return domain.TemplateComponent{}, false
	}
	return comp, true
}

// SetPosition edits the selected component's position; out-of-range
// values are clamped, never rejected.
func (e *Editor) SetPosition(pos domain.Position) error {
	if e.selected == "" {
		return ErrComponentNotFound
	}
	return e.store.UpdatePosition(e.selected, pos)
}

// SetSize edits the selected component's size with clamp semantics.
func (e *Editor) SetSize(size domain.Size) error {
	if e.selected == "" {
		return ErrComponentNotFound
	}
	return e.store.UpdateSize(e.selected, size)
}

// ApplyStyles merges a partial style patch into the selection.
func (e *Editor) ApplyStyles(patch StylePatch) error {
	if e.selected == "" {
		return ErrComponentNotFound
	}
	return e.store.MergeStyles(e.selected, patch)
}

// ToggleField toggles one field key on the selection.
func (e *Editor) ToggleField(key string) error {
	if e.selected == "" {
		return ErrComponentNotFound
	}
	return e.store.ToggleField(e.selected, key)
}

// ToggleColumn toggles one column key on the selection.
func (e *Editor) ToggleColumn(key string) error {
	if e.selected == "" {
		return ErrComponentNotFound
	}
	return e.store.ToggleColumn(e.selected, key)
}

// SetContent writes the free-text payload of the selection. Header
// components store their title under "title", the text kinds store
// body copy under "content".
func (e *Editor) SetContent(key string, value any) error {
	if e.selected == "" {
		return ErrComponentNotFound
	}
	return e.store.SetData(e.selected, key, value)
}

// Remove deletes a component. Removing the selected component clears
// the selection; removing any other component leaves it untouched.
func (e *Editor) Remove(id string) error {
	if err := e.store.Remove(id); err != nil {
		return err
	}
	if e.selected == id {
		e.selected = ""
	}
	return nil
}
