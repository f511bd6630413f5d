package ops

// AddOp is addition: output = a + b.
//
// Both local partials are 1, so the adjoint flows unchanged to each operand.
type AddOp struct{}

func (AddOp) Apply(a, b float64) float64 { return a + b }

// Tangent returns da + db.
func (AddOp) Tangent(_, _, da, db float64) float64 { return da + db }

func (AddOp) Partials(_, _ float64) (float64, float64) { return 1, 1 }
