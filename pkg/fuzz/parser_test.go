package fuzz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testDatabase() *Database {
	db := NewDatabase()

	steel := NewVariable("Steel", 0, 80)
	steel.AddLabel("Cold", Falling(10, 35))
	steel.AddLabel("Hot", Rising(45, 70))
	db.Add(steel)

	stove := NewVariable("Stove", 0, 80)
	stove.AddLabel("Cold", Falling(10, 35))
	stove.AddLabel("Hot", Rising(45, 70))
	db.Add(stove)

	pressure := NewVariable("Pressure", 0, 100)
	pressure.AddLabel("Low", Falling(20, 50))
	pressure.AddLabel("High", Rising(50, 80))
	db.Add(pressure)

	return db
}

func TestParsePostfix(t *testing.T) {
	db := testDatabase()

	testCases := []struct {
		in      string
		postfix string
		output  string
	}{
		{
			"IF Steel is Cold THEN Pressure is Low",
			"Steel is Cold",
			"Pressure is Low",
		},
		{
			"IF Steel is Cold AND Stove is Hot THEN Pressure is Low",
			"Steel is Cold, Stove is Hot, AND",
			"Pressure is Low",
		},
		{
			"IF Steel is Cold AND (Stove is Hot OR Pressure is High) THEN Pressure is Low",
			"Steel is Cold, Stove is Hot, Pressure is High, OR, AND",
			"Pressure is Low",
		},
		{
			"IF Steel is Cold AND Stove is Hot OR Pressure is High THEN Pressure is Low",
			"Steel is Cold, Stove is Hot, AND, Pressure is High, OR",
			"Pressure is Low",
		},
		// Keywords are case-insensitive; names are not.
		{
			"if Steel is Cold and Stove is Hot then Pressure is Low",
			"Steel is Cold, Stove is Hot, AND",
			"Pressure is Low",
		},
		{
			"iF Steel IS Cold aNd (Stove Is Hot oR Stove is Cold) ThEn Pressure is High",
			"Steel is Cold, Stove is Hot, Stove is Cold, OR, AND",
			"Pressure is High",
		},
		// Parens butted up against names still tokenize.
		{
			"IF (Steel is Cold)AND(Stove is Hot) THEN Pressure is Low",
			"Steel is Cold, Stove is Hot, AND",
			"Pressure is Low",
		},
	}

	for _, testCase := range testCases {
		rule, err := NewRule(db, "test", testCase.in)
		require.NoError(t, err, testCase.in)
		require.Equal(t, testCase.postfix, rule.PostfixString(), testCase.in)
		require.Equal(t, testCase.output, rule.Output().String(), testCase.in)
		require.Equal(t, testCase.in, rule.Text())
	}
}

func TestParseErrors(t *testing.T) {
	db := testDatabase()

	testCases := []struct {
		in    string
		error string
	}{
		{
			"Steel is Cold and Stove is Hot",
			"rule must start with IF",
		},
		{
			"",
			"rule must start with IF",
		},
		{
			"IF Steel is Cold and Stove is Hot",
			"rule must contain THEN",
		},
		{
			"IF Steel is Cold then Pressure is Low) ",
			"unbalanced parenthesis",
		},
		{
			"IF (Steel is Cold then Pressure is Low",
			"unbalanced parenthesis",
		},
		{
			"IF Foo is Cold then Pressure is Low",
			"unknown variable: Foo",
		},
		// Case-sensitive name resolution.
		{
			"IF steel is Cold then Pressure is Low",
			"unknown variable: steel",
		},
		{
			"IF Steel is Tepid then Pressure is Low",
			"variable Steel has no label Tepid",
		},
		{
			"IF Steel is Cold THEN (Pressure is Low)",
			"consequent must be a single `variable is label` clause",
		},
		{
			"IF Steel is Cold THEN Pressure is Low AND Stove is Hot",
			"consequent must be a single `variable is label` clause",
		},
		{
			"IF Steel is Cold THEN Pressure is Low Stove is Hot",
			"consequent must consist of exactly one clause",
		},
		{
			"IF THEN Pressure is Low",
			"rule has no antecedent",
		},
		{
			"IF Steel is Cold THEN",
			"rule has no consequent",
		},
		{
			"IF Steel is Cold THEN Pressure is",
			"rule has no consequent",
		},
		{
			"IF Steel Cold THEN Pressure is Low",
			"unexpected token \"Cold\"; expected `is`",
		},
		{
			"IF Steel is Cold Stove is Hot THEN Pressure is Low",
			`unexpected token "Stove"; expected AND, OR, or THEN`,
		},
		{
			"IF Steel is Cold AND THEN Pressure is Low",
			`unexpected token "THEN"; expected a complete clause before THEN`,
		},
		{
			"IF Steel is Cold AND OR Stove is Hot THEN Pressure is Low",
			`unexpected token "OR"; expected a variable name`,
		},
	}

	for _, testCase := range testCases {
		rule, err := NewRule(db, "test", testCase.in)
		require.Nil(t, rule, testCase.in)
		require.EqualError(t, err, testCase.error, testCase.in)
	}
}

func TestParseErrorTypes(t *testing.T) {
	db := testDatabase()

	_, err := NewRule(db, "r", "IF Foo is Cold THEN Pressure is Low")
	unknownVar, ok := err.(*UnknownVariable)
	require.True(t, ok)
	require.Equal(t, "Foo", unknownVar.Name)

	_, err = NewRule(db, "r", "IF Steel is Tepid THEN Pressure is Low")
	unknownLabel, ok := err.(*UnknownLabel)
	require.True(t, ok)
	require.Equal(t, "Steel", unknownLabel.Variable)
	require.Equal(t, "Tepid", unknownLabel.Label)

	_, err = NewRule(db, "r", "IF Steel is Cold THEN Pressure is Low)")
	_, ok = err.(*UnbalancedParenthesis)
	require.True(t, ok)
}
