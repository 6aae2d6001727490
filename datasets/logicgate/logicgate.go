// Package logicgate implements the two-input logic gate truth table datasets
package logicgate

import "strings"

import "github.com/neurlang/perceptron/datasets"
import "github.com/pkg/errors"

// Gate is a two-input boolean function
type Gate byte

const (
	AND Gate = iota
	OR
	NAND
	NOR
	XOR
)

var names = [...]string{"and", "or", "nand", "nor", "xor"}

// ErrUnknownGate is returned by Parse for an unrecognized name.
var ErrUnknownGate = errors.New("unknown gate")

// Parse parses a case insensitive gate name.
func Parse(name string) (Gate, error) {
	for i, v := range names {
		if strings.EqualFold(name, v) {
			return Gate(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownGate, "%q", name)
}

func (g Gate) String() string {
	if int(g) < len(names) {
		return names[g]
	}
	return "gate(" + string(rune('0'+g)) + ")"
}

// Separable reports whether a single perceptron can learn the gate.
func (g Gate) Separable() bool {
	return g != XOR
}

// Apply computes the gate on two bits.
func (g Gate) Apply(a, b bool) bool {
	switch g {
	case AND:
		return a && b
	case OR:
		return a || b
	case NAND:
		return !(a && b)
	case NOR:
		return !(a || b)
	default:
		return a != b
	}
}

// Get gets the n-th row of the truth table.
func (g Gate) Get(n int) datasets.Sample {
	return Sample{Gate: g, A: n&2 != 0, B: n&1 != 0}
}

// Len is the number of truth table rows.
func (g Gate) Len() int {
	return 4
}

// Sample is one truth table row
type Sample struct {
	Gate Gate
	A, B bool
}

func (s Sample) Len() int {
	return 2
}

func (s Sample) Feature(n int) float64 {
	if (n == 0 && s.A) || (n == 1 && s.B) {
		return 1
	}
	return 0
}

func (s Sample) Output() int {
	if s.Gate.Apply(s.A, s.B) {
		return 1
	}
	return 0
}
