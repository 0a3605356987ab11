package pane

// Spacer is an empty component used to put a fixed gap between stack
// children beyond the stack's own spacing.
type Spacer struct {
	Panel
}

// NewSpacer creates a gap of the given extent on both axes, so the
// same spacer works in vertical and horizontal stacks.
func NewSpacer(size int) *Spacer {
	s := &Spacer{Panel: *NewPanel("spacer")}
	s.bounds.Width = size
	s.bounds.Height = size
	return s
}

// Render implements Component. A spacer paints nothing.
func (s *Spacer) Render(*Buffer, *Theme) {}
