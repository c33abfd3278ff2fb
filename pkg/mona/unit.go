package mona

// Unit is the zero-information value. Operations that exist only for their
// side effects return Unit so that every operation produces a value.
type Unit struct{}

// U is the Unit value.
var U = Unit{}

// Equal always reports true: all Units are the same value.
func (Unit) Equal(Unit) bool { return true }

// Hash returns the same value for every Unit.
func (Unit) Hash() uint64 { return 0 }

func (Unit) String() string { return "()" }

func (Unit) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

func (*Unit) UnmarshalJSON([]byte) error { return nil }
