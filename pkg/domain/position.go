package domain

// Position is a 2D coordinate used only for layout.
// It carries no simulation semantics.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}
