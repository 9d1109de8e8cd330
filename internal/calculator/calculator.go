// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator provides the basic arithmetic operations.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidArgument is returned when an operand is outside the
	// operation's valid domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Add returns the sum of two numbers.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of two numbers.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of two numbers.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of two numbers.
// It fails with ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("cannot divide %g by zero: %w", a, ErrDivisionByZero)
	}
	return a / b, nil
}

// Power raises base to the given exponent using IEEE 754 semantics,
// including fractional and negative exponents.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// SquareRoot returns the non-negative square root of n.
// It fails with ErrInvalidArgument when n is negative.
func SquareRoot(n float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("cannot take square root of negative number %g: %w", n, ErrInvalidArgument)
	}
	return math.Sqrt(n), nil
}
