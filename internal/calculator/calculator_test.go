// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	result := Add(2, 3)
	assert.Equal(t, 5.0, result, "2 + 3 should equal 5")
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		b    float64
		want float64
	}{
		{name: "positive operands", a: 10, b: 4, want: 6},
		{name: "result below zero", a: 3, b: 7, want: -4},
		{name: "fractional operands", a: 2.5, b: 0.5, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(tt.a, tt.b))
		})
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		b    float64
		want float64
	}{
		{name: "positive operands", a: 3, b: 4, want: 12},
		{name: "negative operand", a: -3, b: 4, want: -12},
		{name: "zero operand", a: 0, b: 123.456, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Multiply(tt.a, tt.b))
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		b    float64
		want float64
	}{
		{name: "even division", a: 8, b: 2, want: 4},
		{name: "fractional result", a: 1, b: 4, want: 0.25},
		{name: "negative divisor", a: 9, b: -3, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := Divide(5, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent float64
		want     float64
	}{
		{name: "two to the tenth", base: 2, exponent: 10, want: 1024},
		{name: "fractional exponent", base: 9, exponent: 0.5, want: 3},
		{name: "negative exponent", base: 2, exponent: -1, want: 0.5},
		{name: "zero exponent", base: 123.456, exponent: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Power(tt.base, tt.exponent))
		})
	}
}

func TestPowerMatchesMathPow(t *testing.T) {
	assert.Equal(t, math.Pow(1.5, 2.5), Power(1.5, 2.5))
}

func TestSquareRoot(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want float64
	}{
		{name: "perfect square", n: 9, want: 3},
		{name: "zero", n: 0, want: 0},
		{name: "non-integer root", n: 2, want: math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SquareRoot(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSquareRootNegative(t *testing.T) {
	_, err := SquareRoot(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
