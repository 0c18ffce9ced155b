package constraint

// Priority is the weight the host solver gives a constraint. Higher wins;
// PriorityRequired constraints must be satisfied.
type Priority float32

const (
	PriorityRequired    Priority = 1000
	PriorityDefaultHigh Priority = 750
	PriorityDefaultLow  Priority = 250
	PriorityFittingSize Priority = 50
)

// Valid reports whether p lies in (0, 1000].
func (p Priority) Valid() bool {
	return p > 0 && p <= PriorityRequired
}

// IsRequired reports whether p is the required weight.
func (p Priority) IsRequired() bool {
	return p == PriorityRequired
}
