package ops

// SubOp is subtraction: output = a - b.
//
// Operand order matters: d/da = 1, d/db = -1.
type SubOp struct{}

func (SubOp) Apply(a, b float64) float64 { return a - b }

// Tangent returns da - db.
func (SubOp) Tangent(_, _, da, db float64) float64 { return da - db }

func (SubOp) Partials(_, _ float64) (float64, float64) { return 1, -1 }
