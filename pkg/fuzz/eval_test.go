package fuzz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// constClause builds a clause whose truth value is fixed at degree.
func constClause(t *testing.T, degree float64) *Clause {
	v := NewVariable("v", 0, 1)
	v.AddLabel("l", Rising(0, 1))
	v.SetInput(degree)
	label, err := v.Label("l")
	require.NoError(t, err)
	return &Clause{variable: v, label: label}
}

func TestEvaluateProgram(t *testing.T) {
	a := &operandToken{clause: constClause(t, 0.3)}
	b := &operandToken{clause: constClause(t, 0.8)}

	andProg := program{a, b, &operatorToken{op: opAnd}}
	require.InDelta(t, 0.3, andProg.evaluate(Minimum, Maximum), 1e-9)

	orProg := program{a, b, &operatorToken{op: opOr}}
	require.InDelta(t, 0.8, orProg.evaluate(Minimum, Maximum), 1e-9)

	single := program{a}
	require.InDelta(t, 0.3, single.evaluate(Minimum, Maximum), 1e-9)
}

func TestEvaluateMalformedProgramPanics(t *testing.T) {
	// An operator with only one operand underflows the stack: an
	// internal invariant breach, not a user error.
	malformed := program{
		&operandToken{clause: constClause(t, 0.5)},
		&operatorToken{op: opAnd},
	}
	require.Panics(t, func() {
		malformed.evaluate(Minimum, Maximum)
	})
}
