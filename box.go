package ui

import "github.com/mattn/go-runewidth"

// Box is a leaf widget with a natural size. Without a natural size it
// measures its label: one row, as many columns as the label occupies.
type Box struct {
	*Component
	label         string
	naturalWidth  Dim
	naturalHeight Dim
	draws         int
}

// NewBox creates a box with the given natural size.
func NewBox(width, height float64, opts ...Option) *Box {
	b := &Box{naturalWidth: Explicit(width), naturalHeight: Explicit(height)}
	b.Component = NewComponent(b)
	b.apply(opts)
	return b
}

// NewLabel creates a box sized to its text.
func NewLabel(text string, opts ...Option) *Box {
	b := &Box{label: text}
	b.Component = NewComponent(b)
	b.apply(opts)
	return b
}

// Draw implements Drawer.
func (b *Box) Draw() {
	b.draws++
	natW, natH := b.NaturalSize()
	b.SetMeasuredSize(b.explicitWidth.Or(natW), b.explicitHeight.Or(natH))
}

// NaturalSize returns the size the box takes when nothing is imposed.
func (b *Box) NaturalSize() (width, height float64) {
	width = b.naturalWidth.Or(float64(runewidth.StringWidth(b.label)))
	height = b.naturalHeight.Or(1)
	if !b.naturalHeight.IsSet() && b.label == "" {
		height = 0
	}
	return width, height
}

// SetNaturalSize changes the size the box measures to.
func (b *Box) SetNaturalSize(width, height float64) {
	b.naturalWidth, b.naturalHeight = Explicit(width), Explicit(height)
	b.Invalidate(FlagSize)
}

// Label returns the box's text.
func (b *Box) Label() string {
	return b.label
}

// SetLabel changes the box's text.
func (b *Box) SetLabel(text string) {
	if b.label == text {
		return
	}
	b.label = text
	b.Invalidate(FlagData)
}

// DrawCount returns how many times Draw has run.
func (b *Box) DrawCount() int {
	return b.draws
}
