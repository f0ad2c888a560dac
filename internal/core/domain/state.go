package domain

// Direction is a button-style navigation step.
type Direction int

const (
	// DirectionUp moves the view towards larger y.
	DirectionUp Direction = iota
	// DirectionDown moves the view towards smaller y.
	DirectionDown
	// DirectionLeft moves the view towards smaller x.
	DirectionLeft
	// DirectionRight moves the view towards larger x.
	DirectionRight
)

// ViewState is the mutable state of one plot: what is shown and where.
type ViewState struct {
	Window     Window
	Expression string
	ColorName  string
}

// Color resolves the selected color name to its hex code.
func (s ViewState) Color() string {
	return ResolveColor(s.ColorName)
}
