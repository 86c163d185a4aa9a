package atlas

// ShelfAllocator implements shelf-based rectangle packing.
// Simple and fast algorithm suited to glyphs, which share a similar height
// within one face.
//
// The algorithm organizes rectangles in horizontal "shelves".
// Each shelf has a fixed height (determined by the tallest item placed so far).
// New items are placed left-to-right on the current shelf until no space remains,
// then a new shelf is started below.
type ShelfAllocator struct {
	width   int     // Total width of the area
	height  int     // Total height of the area
	padding int     // Padding between items
	shelves []shelf // List of shelves

	// Tracking for utilization and growth
	usedArea int
	bottom   int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// NewShelfAllocator creates a new allocator for the given dimensions.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns x, y position and true if space was found, or -1, -1, false if not.
//
// The algorithm:
// 1. Try to fit on an existing shelf with enough height
// 2. If no shelf fits, create a new shelf
// 3. If no space for new shelf, allocation fails
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 {
		return -1, -1, false
	}

	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		shelf := &a.shelves[i]

		if shelf.x+paddedW > a.width {
			continue
		}

		if h > shelf.height {
			// Only the last shelf may grow, and only if there is room below.
			if i == len(a.shelves)-1 && shelf.y+paddedH <= a.height {
				shelf.height = h
				x, y = shelf.x, shelf.y
				shelf.x += paddedW
				a.record(w, h, y)
				return x, y, true
			}
			continue
		}

		x, y = shelf.x, shelf.y
		shelf.x += paddedW
		a.record(w, h, y)
		return x, y, true
	}

	if paddedW > a.width {
		return -1, -1, false
	}

	newY := a.nextShelfY()
	if newY+paddedH > a.height {
		return -1, -1, false
	}

	a.shelves = append(a.shelves, shelf{
		y:      newY,
		height: h,
		x:      paddedW,
	})
	a.record(w, h, newY)

	return 0, newY, true
}

func (a *ShelfAllocator) record(w, h, y int) {
	a.usedArea += w * h
	if b := y + h; b > a.bottom {
		a.bottom = b
	}
}

func (a *ShelfAllocator) nextShelfY() int {
	if len(a.shelves) == 0 {
		return 0
	}
	last := a.shelves[len(a.shelves)-1]
	return last.y + last.height + a.padding
}

// Bottom returns the lowest texel row (exclusive) covered by any allocation.
func (a *ShelfAllocator) Bottom() int {
	return a.bottom
}

// Utilization returns the allocated fraction of the full packing area
// (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// UsedArea returns the total area used by allocations.
func (a *ShelfAllocator) UsedArea() int {
	return a.usedArea
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}

// RemainingHeight returns the vertical space remaining for new shelves.
func (a *ShelfAllocator) RemainingHeight() int {
	used := a.nextShelfY()
	if used >= a.height {
		return 0
	}
	return a.height - used
}
