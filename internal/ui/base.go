package ui

// Base tracks the cell area a component renders into.
// Embed it in models that are sized by their parent.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Empty reports whether there is no area to draw in.
func (b Base) Empty() bool {
	return b.width <= 0 || b.height <= 0
}
