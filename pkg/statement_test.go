package fuzzql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatement(t *testing.T) {
	stmt, err := Parse(`CREATEVARIABLE Steel RANGE (0, 80) LABELS (Cold TRIANGLE (0, 10, 30), Hot RISING (45, 70))`)
	require.NoError(t, err)
	create := stmt.CreateVariable
	require.NotNil(t, create)
	require.Equal(t, "Steel", create.Name)
	require.Equal(t, "0", create.Min)
	require.Equal(t, "80", create.Max)
	require.Len(t, create.Labels, 2)
	require.Equal(t, "Cold", create.Labels[0].Name)
	require.Equal(t, "TRIANGLE", create.Labels[0].Shape)
	require.Equal(t, []string{"0", "10", "30"}, create.Labels[0].Params)
	require.Equal(t, "Hot", create.Labels[1].Name)

	// Keywords are case-insensitive; names and rule text are not.
	stmt, err = Parse(`createrule pressure as 'IF Steel is Cold THEN Pressure is Low'`)
	require.NoError(t, err)
	require.NotNil(t, stmt.CreateRule)
	require.Equal(t, "pressure", stmt.CreateRule.Name)
	require.Equal(t, "IF Steel is Cold THEN Pressure is Low", stmt.CreateRule.Text)

	stmt, err = Parse(`SET Steel = 12.5`)
	require.NoError(t, err)
	require.NotNil(t, stmt.Set)
	require.Equal(t, "Steel", stmt.Set.Variable)
	require.Equal(t, "12.5", stmt.Set.Value)

	stmt, err = Parse(`INFER pressure`)
	require.NoError(t, err)
	require.NotNil(t, stmt.Infer)
	require.Equal(t, "pressure", stmt.Infer.Rule)

	stmt, err = Parse(`INFER`)
	require.NoError(t, err)
	require.NotNil(t, stmt.Infer)
	require.Equal(t, "", stmt.Infer.Rule)

	stmt, err = Parse(`SHOWVARIABLES`)
	require.NoError(t, err)
	require.NotNil(t, stmt.ShowVariables)

	stmt, err = Parse(`SHOWRULES`)
	require.NoError(t, err)
	require.NotNil(t, stmt.ShowRules)
}

func TestParseStatementErrors(t *testing.T) {
	badStatements := []string{
		"",
		"DROP TABLE foo",
		"CREATEVARIABLE",
		"CREATEVARIABLE Steel RANGE (0, 80)",
		"CREATERULE pressure",
		"SET Steel",
	}
	for _, stmt := range badStatements {
		_, err := Parse(stmt)
		require.Error(t, err, stmt)
	}
}
