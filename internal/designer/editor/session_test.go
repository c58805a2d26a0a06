package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smallbiznis/stencil/internal/designer/domain"
	"github.com/smallbiznis/stencil/internal/designer/geometry"
)

type stubSaver struct {
	err     error
	block   chan struct{}
	saved   []domain.TemplateLayout
	savedID string
}

func (s *stubSaver) SaveLayout(ctx context.Context, templateID string, layout domain.TemplateLayout) error {
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return s.err
	}
	s.savedID = templateID
	s.saved = append(s.saved, layout)
	return nil
}

func TestSessionSave(t *testing.T) {
	saver := &stubSaver{}
	sess := NewSession("tmpl-1", testLayout(), geometry.CanvasForWidth(600), saver)

	if err := sess.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if saver.savedID != "tmpl-1" || len(saver.saved) != 1 {
		t.Fatalf("expected one save for tmpl-1, got %q x%d", saver.savedID, len(saver.saved))
	}
}

func TestSecondSaveRefusedWhileInFlight(t *testing.T) {
	saver := &stubSaver{block: make(chan struct{})}
	sess := NewSession("tmpl-1", testLayout(), geometry.CanvasForWidth(600), saver)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- sess.Save(context.Background())
	}()

	for !sess.Saving() {
		time.Sleep(time.Millisecond)
	}

	if err := sess.Save(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}

	close(saver.block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first save: %v", err)
	}
	if sess.Saving() {
		t.Fatalf("expected in-flight flag cleared")
	}
}

func TestFailedSaveLeavesLayoutUntouched(t *testing.T) {
	saver := &stubSaver{err: errors.New("storage_unavailable")}
	sess := NewSession("tmpl-1", testLayout(), geometry.CanvasForWidth(600), saver)

	if err := sess.Store.UpdatePosition("details", domain.Position{X: 33, Y: 33}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := sess.Save(context.Background()); err == nil {
		t.Fatalf("expected save failure")
	}

	comp, err := sess.Store.Component("details")
	if err != nil {
		t.Fatalf("component: %v", err)
	}
	if comp.Position.X != 33 || comp.Position.Y != 33 {
		t.Fatalf("expected in-memory edits preserved after failure, got %+v", comp.Position)
	}

	// Retry path: the same session saves cleanly once the store recovers.
	saver.err = nil
	if err := sess.Save(context.Background()); err != nil {
		t.Fatalf("retry save: %v", err)
	}
	if len(saver.saved) != 1 || saver.saved[0].Components[0].Position.X != 33 {
		t.Fatalf("expected retried save to carry the edited layout")
	}
}
