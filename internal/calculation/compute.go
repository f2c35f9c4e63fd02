package calculation

import "fmt"

// Compute applies sign to the operands using float64 arithmetic.
//
// It is total: division by zero yields +Inf, -Inf or NaN as IEEE-754 defines.
func Compute(left, right float64, sign Sign) float64 {
	switch sign {
	case Plus:
		return left + right
	case Minus:
		return left - right
	case Times:
		return left * right
	case Divide:
		return left / right
	}
	// Sign values can only be built inside this package.
	panic(fmt.Sprintf("calculation: unknown sign %d", sign.op))
}
