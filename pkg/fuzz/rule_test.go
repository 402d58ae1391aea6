package fuzz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// endToEndDatabase gives Steel a Cold membership of 0.9 at input 12
// and Stove a Hot membership of 0.7 at input 70.
func endToEndDatabase(t *testing.T) *Database {
	db := NewDatabase()

	steel := NewVariable("Steel", 0, 80)
	steel.AddLabel("Cold", Triangle(0, 10, 30))
	db.Add(steel)

	stove := NewVariable("Stove", 0, 80)
	stove.AddLabel("Hot", Triangle(56, 76, 80))
	db.Add(stove)

	pressure := NewVariable("Pressure", 0, 100)
	pressure.AddLabel("Low", Falling(20, 50))
	db.Add(pressure)

	steel.SetInput(12)
	stove.SetInput(70)

	steelCold, err := steel.Label("Cold")
	require.NoError(t, err)
	require.InDelta(t, 0.9, steel.Membership(steelCold), 1e-9)

	stoveHot, err := stove.Label("Hot")
	require.NoError(t, err)
	require.InDelta(t, 0.7, stove.Membership(stoveHot), 1e-9)

	return db
}

func TestFiringStrength(t *testing.T) {
	db := endToEndDatabase(t)

	andRule, err := NewRule(db, "and", "IF Steel is Cold AND Stove is Hot THEN Pressure is Low")
	require.NoError(t, err)
	require.InDelta(t, 0.7, andRule.FiringStrength(), 1e-9)

	orRule, err := NewRule(db, "or", "IF Steel is Cold OR Stove is Hot THEN Pressure is Low")
	require.NoError(t, err)
	require.InDelta(t, 0.9, orRule.FiringStrength(), 1e-9)

	// Unchanged inputs, unchanged result.
	require.Equal(t, andRule.FiringStrength(), andRule.FiringStrength())
}

func TestFiringStrengthTracksInputs(t *testing.T) {
	db := endToEndDatabase(t)

	rule, err := NewRule(db, "r", "IF Steel is Cold AND Stove is Hot THEN Pressure is Low")
	require.NoError(t, err)
	require.InDelta(t, 0.7, rule.FiringStrength(), 1e-9)

	// No caching: moving an input moves the next evaluation.
	steel, err := db.Lookup("Steel")
	require.NoError(t, err)
	steel.SetInput(30)
	require.InDelta(t, 0, rule.FiringStrength(), 1e-9)
}

func TestFiringStrengthPrecedence(t *testing.T) {
	db := endToEndDatabase(t)

	// Steel is Cold = 0.9, Stove is Hot = 0.7.
	// A and B or C groups as (A and B) or C.
	flat, err := NewRule(db, "flat",
		"IF Steel is Cold AND Stove is Hot OR Stove is Hot THEN Pressure is Low")
	require.NoError(t, err)
	require.InDelta(t, 0.7, flat.FiringStrength(), 1e-9)

	// Parens force the OR first: min(0.9, max(0.7, 0.7)).
	grouped, err := NewRule(db, "grouped",
		"IF Steel is Cold AND (Stove is Hot OR Stove is Hot) THEN Pressure is Low")
	require.NoError(t, err)
	require.InDelta(t, 0.7, grouped.FiringStrength(), 1e-9)
}

func TestCustomNorms(t *testing.T) {
	db := endToEndDatabase(t)

	rule, err := NewRuleWithNorms(db, "r",
		"IF Steel is Cold AND Stove is Hot THEN Pressure is Low",
		Product, ProbabilisticSum)
	require.NoError(t, err)
	require.InDelta(t, 0.9*0.7, rule.FiringStrength(), 1e-9)

	orRule, err := NewRuleWithNorms(db, "r",
		"IF Steel is Cold OR Stove is Hot THEN Pressure is Low",
		Product, ProbabilisticSum)
	require.NoError(t, err)
	require.InDelta(t, 0.9+0.7-0.9*0.7, orRule.FiringStrength(), 1e-9)
}

func TestOperandOrder(t *testing.T) {
	db := endToEndDatabase(t)

	// A non-commutative operator sees the left clause as x and the
	// right clause as y.
	first := NormFunc(func(x, y float64) float64 {
		return x
	})
	rule, err := NewRuleWithNorms(db, "r",
		"IF Steel is Cold AND Stove is Hot THEN Pressure is Low",
		first, Maximum)
	require.NoError(t, err)
	require.InDelta(t, 0.9, rule.FiringStrength(), 1e-9)
}

func TestOutputClause(t *testing.T) {
	db := endToEndDatabase(t)

	rule, err := NewRule(db, "r", "IF Steel is Cold THEN Pressure is Low")
	require.NoError(t, err)

	output := rule.Output()
	require.Equal(t, "Pressure is Low", output.String())

	pressure, err := db.Lookup("Pressure")
	require.NoError(t, err)
	require.Equal(t, pressure, output.Variable())

	low, err := pressure.Label("Low")
	require.NoError(t, err)
	require.Equal(t, low, output.Label())

	other, err := NewRule(db, "other", "IF Stove is Hot THEN Pressure is Low")
	require.NoError(t, err)
	require.True(t, output.Equal(other.Output()))
}
