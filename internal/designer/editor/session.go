package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/smallbiznis/stencil/internal/designer/domain"
	"github.com/smallbiznis/stencil/internal/designer/geometry"
)

var ErrSaveInFlight = errors.New("save_in_flight")

// Saver writes a layout document back to the template store. The
// template service satisfies this; tests substitute a stub.
type Saver interface {
	SaveLayout(ctx context.Context, templateID string, layout domain.TemplateLayout) error
}

// Session owns the editing state for one template: store, selection,
// drag controller and the save gate. A session holds its layout
// exclusively until saved; nothing is shared across sessions.
type Session struct {
	TemplateID string
	Store      *Store
	Editor     *Editor
	Drag       *DragController

	saver Saver

	mu       sync.Mutex
	inFlight bool
}

// NewSession starts editing a layout loaded from the template store.
func NewSession(templateID string, layout domain.TemplateLayout, canvas geometry.CanvasPixels, saver Saver) *Session {
	store := NewStore(layout)
	return &Session{
		TemplateID: templateID,
		Store:      store,
		Editor:     NewEditor(store),
		Drag:       NewDragController(store, canvas),
		saver:      saver,
	}
}

// Save writes the working layout through the saver. A second save while
// one is pending is refused with ErrSaveInFlight; on failure the
// in-memory layout is left exactly as it was so the user can retry.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	return s.saver.SaveLayout(ctx, s.TemplateID, s.Store.Layout())
}

// Saving reports whether a save is currently pending.
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}
