package atlas

import "testing"

func TestShelfAllocator_Basic(t *testing.T) {
	a := NewShelfAllocator(100, 100, 2)

	x, y, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate first cell")
	}
	if x != 0 || y != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", x, y)
	}

	x, y, ok = a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate second cell")
	}
	if x != 22 || y != 0 { // 20 + 2 padding
		t.Errorf("expected (22,0), got (%d,%d)", x, y)
	}
}

func TestShelfAllocator_InvalidSize(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, _, ok := a.Allocate(size[0], size[1]); ok {
			t.Errorf("Allocate(%d, %d) succeeded", size[0], size[1])
		}
	}
}

func TestShelfAllocator_Full(t *testing.T) {
	a := NewShelfAllocator(50, 50, 2)

	count := 0
	for {
		_, _, ok := a.Allocate(20, 20)
		if !ok {
			break
		}
		count++
		if count > 100 {
			t.Fatal("allocator never filled up")
		}
	}

	if count != 4 { // 2x2 grid of 20+2 in 50x50
		t.Errorf("expected 4 allocations, got %d", count)
	}
	if a.RemainingHeight() != 6 {
		t.Errorf("expected 6 rows left, got %d", a.RemainingHeight())
	}
}

func TestShelfAllocator_TooWide(t *testing.T) {
	a := NewShelfAllocator(50, 500, 0)

	if _, _, ok := a.Allocate(51, 10); ok {
		t.Error("item wider than the allocator should not fit")
	}
	if a.ShelfCount() != 0 {
		t.Errorf("failed allocation created %d shelves", a.ShelfCount())
	}
}

func TestShelfAllocator_Utilization(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)

	if a.Utilization() != 0 {
		t.Errorf("expected 0 utilization initially, got %f", a.Utilization())
	}

	a.Allocate(50, 50)
	if util := a.Utilization(); util != 0.25 {
		t.Errorf("expected 0.25 utilization, got %f", util)
	}
	if a.UsedArea() != 2500 {
		t.Errorf("expected used area 2500, got %d", a.UsedArea())
	}
}

func TestShelfAllocator_VariableHeights(t *testing.T) {
	a := NewShelfAllocator(100, 100, 2)

	// First row with height 20
	a.Allocate(20, 20)

	// Same row, shorter item
	_, y, ok := a.Allocate(20, 10)
	if !ok {
		t.Fatal("failed to allocate shorter item")
	}
	if y != 0 {
		t.Errorf("expected same shelf, got y=%d", y)
	}

	// Fill first row
	a.Allocate(20, 20)
	a.Allocate(20, 20)

	// New row should start at height 20 + padding
	_, y2, ok := a.Allocate(20, 30)
	if !ok {
		t.Fatal("failed to allocate on new shelf")
	}
	if y2 != 22 {
		t.Errorf("expected y=22 for new shelf, got %d", y2)
	}
	if a.Bottom() != 52 {
		t.Errorf("expected bottom 52, got %d", a.Bottom())
	}
}

func TestShelfAllocator_LastShelfGrows(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)

	a.Allocate(1, 1)
	x, y, ok := a.Allocate(10, 12)
	if !ok {
		t.Fatal("failed to allocate taller item")
	}
	if x != 1 || y != 0 {
		t.Errorf("expected (1,0) on the grown shelf, got (%d,%d)", x, y)
	}
	if a.ShelfCount() != 1 {
		t.Errorf("expected 1 shelf, got %d", a.ShelfCount())
	}
}
