package timevalue

import "fmt"

// ParseError reports a time expression that no grammar rule recognizes.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized time expression %q", e.Input)
}

// ArithmeticError reports an operation whose inputs make the arithmetic
// undefined, such as quantizing against a zero-length subdivision.
type ArithmeticError struct {
	Op     string
	Reason string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
