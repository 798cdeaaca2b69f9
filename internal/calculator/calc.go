// Package calculator provides integer and floating-point arithmetic helpers.
//
// Integer operations use Go's native int and wrap on overflow. Operations
// that can reject their input return an error wrapping ErrInvalidArgument or
// ErrDivisionByZero.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned when an operand is outside the
	// operation's domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a divided by b.
// The zero check is exact: any non-zero divisor, however small, is accepted.
func Divide(a, b float64) (float64, error) {
	if b == 0.0 {
		return 0, fmt.Errorf("%w: %g / 0", ErrDivisionByZero, a)
	}
	return a / b, nil
}

// Power returns base raised to exponent by repeated multiplication.
// Power(x, 0) is 1 for every x, including 0.
func Power(base, exponent int) (int, error) {
	if exponent < 0 {
		return 0, fmt.Errorf("%w: negative exponent %d not supported", ErrInvalidArgument, exponent)
	}

	result := 1
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result, nil
}

// SquareRoot returns the principal square root of number.
func SquareRoot(number float64) (float64, error) {
	if number < 0 {
		return 0, fmt.Errorf("%w: square root of negative number %g", ErrInvalidArgument, number)
	}
	return math.Sqrt(number), nil
}

// IsEven reports whether number is divisible by two.
func IsEven(number int) bool {
	return number%2 == 0
}

// Factorial returns n!. Large n overflows silently.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative number %d", ErrInvalidArgument, n)
	}

	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}
