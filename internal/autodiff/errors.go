package autodiff

import "errors"

// Common errors.
var (
	// ErrUninitialized is returned when a backward pass is requested on a
	// tree whose values have not been computed by a value pass.
	ErrUninitialized = errors.New("backward: value cache unset (call Eval first)")

	// ErrUnknownVariable is returned by Gradient.Lookup for a variable that
	// does not appear in the differentiated tree. Its partial is zero.
	ErrUnknownVariable = errors.New("variable not present in expression")

	// ErrShapeMismatch is returned when vector operands have incompatible sizes.
	ErrShapeMismatch = errors.New("operand sizes do not match")
)
