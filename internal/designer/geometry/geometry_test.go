package geometry

import (
	"testing"

	"github.com/smallbiznis/stencil/internal/designer/domain"
)

func TestClampPositionKeepsComponentOnCanvas(t *testing.T) {
	size := domain.Size{Width: 30, Height: 20}

	cases := []struct {
		name string
		in   domain.Position
		want domain.Position
	}{
		{"inside", domain.Position{X: 10, Y: 10}, domain.Position{X: 10, Y: 10}},
		{"past right edge", domain.Position{X: 95, Y: 10}, domain.Position{X: 70, Y: 10}},
		{"past bottom edge", domain.Position{X: 10, Y: 99}, domain.Position{X: 10, Y: 80}},
		{"negative", domain.Position{X: -5, Y: -3}, domain.Position{X: 0, Y: 0}},
	}
	for _, tc := range cases {
		got := ClampPosition(tc.in, size)
		if got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestClampPositionFullWidthComponent(t *testing.T) {
	// width=100 leaves no horizontal room: x must always clamp to 0.
	size := domain.Size{Width: 100, Height: 40}
	got := ClampPosition(domain.Position{X: 80, Y: 10}, size)
	if got.X != 0 {
		t.Fatalf("expected x=0 for full-width component, got %f", got.X)
	}
	if got.Y != 10 {
		t.Fatalf("expected y unchanged, got %f", got.Y)
	}
}

func TestClampSizeBounds(t *testing.T) {
	got := ClampSize(domain.Size{Width: 2, Height: 150})
	if got.Width != MinSizePct {
		t.Fatalf("expected width clamped to %f, got %f", MinSizePct, got.Width)
	}
	if got.Height != MaxSizePct {
		t.Fatalf("expected height clamped to %f, got %f", MaxSizePct, got.Height)
	}
}

func TestDeltaFromPixels(t *testing.T) {
	canvas := CanvasForWidth(600)
	dx, dy := DeltaFromPixels(60, canvas.Height/2, canvas)
	if dx != 10 {
		t.Fatalf("expected dx=10, got %f", dx)
	}
	if dy != 50 {
		t.Fatalf("expected dy=50, got %f", dy)
	}
}

func TestDeltaFromPixelsZeroCanvas(t *testing.T) {
	dx, dy := DeltaFromPixels(50, 50, CanvasPixels{})
	if dx != 0 || dy != 0 {
		t.Fatalf("expected zero delta for empty canvas, got (%f, %f)", dx, dy)
	}
}

func TestCanvasForWidthAspect(t *testing.T) {
	canvas := CanvasForWidth(210)
	if canvas.Height != 297 {
		t.Fatalf("expected A4 aspect height 297, got %f", canvas.Height)
	}
}

func TestSnap(t *testing.T) {
	got := Snap(domain.Position{X: 12.4, Y: 17.6}, 5)
	if got.X != 10 || got.Y != 20 {
		t.Fatalf("expected (10, 20), got (%f, %f)", got.X, got.Y)
	}
	unchanged := Snap(domain.Position{X: 12.4, Y: 17.6}, 0)
	if unchanged.X != 12.4 || unchanged.Y != 17.6 {
		t.Fatalf("expected no snapping for zero grid, got %+v", unchanged)
	}
}
