package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 2, 3, 5},
		{"zeros", 0, 0, 0},
		{"negative and positive", -1, 1, 0},
		{"both negative", -4, -6, -10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Add(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Add(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive result", 10, 4, 6},
		{"zeros", 0, 0, 0},
		{"negative result", 1, 5, -4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Subtract(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 5, 6, 30},
		{"multiply by zero", 0, 5, 0},
		{"negative and positive", -2, 3, -6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Multiply(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Multiply(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestMultiplyWraps(t *testing.T) {
	if got := Multiply(math.MaxInt, 2); got != -2 {
		t.Errorf("Multiply(MaxInt, 2) = %d, want -2", got)
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"exact", 15, 3, 5},
		{"fraction", 10, 4, 2.5},
		{"negative divisor", 10, -2, -5},
		{"tiny divisor", 1, 0x1p-1000, 0x1p1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Divide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Divide(%g, %g) unexpected error: %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("Divide(%g, %g) = %g, want %g", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivideSubnormalDivisor(t *testing.T) {
	result, err := Divide(1, math.SmallestNonzeroFloat64)
	if err != nil {
		t.Fatalf("Divide(1, SmallestNonzeroFloat64) unexpected error: %v", err)
	}
	if !math.IsInf(result, 1) {
		t.Errorf("Divide(1, SmallestNonzeroFloat64) = %g, want +Inf", result)
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []float64{0, 1, -7.5, math.Inf(1)} {
		_, err := Divide(a, 0.0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Divide(%g, 0) error = %v, want ErrDivisionByZero", a, err)
		}
	}

	if _, err := Divide(1, math.Copysign(0, -1)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Divide(1, -0) error = %v, want ErrDivisionByZero", err)
	}

	_, err := Divide(7, 0)
	if err == nil || err.Error() != "division by zero: 7 / 0" {
		t.Errorf("Divide(7, 0) error = %v, want %q", err, "division by zero: 7 / 0")
	}
}

func TestPower(t *testing.T) {
	cases := []struct {
		name           string
		base, exponent int
		expected       int
	}{
		{"two to the eighth", 2, 8, 256},
		{"zero exponent", 7, 0, 1},
		{"zero to the zero", 0, 0, 1},
		{"negative base zero exponent", -3, 0, 1},
		{"negative base odd exponent", -2, 3, -8},
		{"one exponent", 9, 1, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Power(tc.base, tc.exponent)
			if err != nil {
				t.Fatalf("Power(%d, %d) unexpected error: %v", tc.base, tc.exponent, err)
			}
			if result != tc.expected {
				t.Errorf("Power(%d, %d) = %d, want %d", tc.base, tc.exponent, result, tc.expected)
			}
		})
	}
}

func TestPowerNegativeExponent(t *testing.T) {
	result, err := Power(2, -1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Power(2, -1) error = %v, want ErrInvalidArgument", err)
	}
	if result != 0 {
		t.Errorf("Power(2, -1) returned partial result %d", result)
	}
}

func TestSquareRoot(t *testing.T) {
	cases := []struct {
		in, expected float64
	}{
		{16, 4},
		{0, 0},
		{2.25, 1.5},
	}

	for _, tc := range cases {
		result, err := SquareRoot(tc.in)
		if err != nil {
			t.Fatalf("SquareRoot(%g) unexpected error: %v", tc.in, err)
		}
		if result != tc.expected {
			t.Errorf("SquareRoot(%g) = %g, want %g", tc.in, result, tc.expected)
		}
	}

	if _, err := SquareRoot(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SquareRoot(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestIsEven(t *testing.T) {
	cases := []struct {
		n        int
		expected bool
	}{
		{4, true},
		{7, false},
		{0, true},
		{-4, true},
		{-3, false},
	}

	for _, tc := range cases {
		if got := IsEven(tc.n); got != tc.expected {
			t.Errorf("IsEven(%d) = %v, want %v", tc.n, got, tc.expected)
		}
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		n        int
		expected int
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}

	for _, tc := range cases {
		result, err := Factorial(tc.n)
		if err != nil {
			t.Fatalf("Factorial(%d) unexpected error: %v", tc.n, err)
		}
		if result != tc.expected {
			t.Errorf("Factorial(%d) = %d, want %d", tc.n, result, tc.expected)
		}
	}

	if _, err := Factorial(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Factorial(-1) error = %v, want ErrInvalidArgument", err)
	}
}
