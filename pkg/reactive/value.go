package reactive

// Value is a Changeable initialized with an explicit starting value.
// It adds no behavior of its own.
type Value struct {
	Changeable
}

// NewValue creates a cell holding initial. No listeners exist yet, so
// the initial value is stored without a notification pass.
func NewValue(initial any) *Value {
	v := &Value{}
	v.value = initial
	return v
}
