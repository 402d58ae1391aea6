package fuzzql

import (
	"testing"
)

// TestRestart tests that variables, inputs, and rules are reloaded
// when the process restarts.
func TestRestart(t *testing.T) {
	// Define, set, shutdown.
	tsr, client, err := NewTestServer(testServerArgs{preserveWhenDone: true})
	if err != nil {
		t.Fatal(err)
	}

	stmts := []string{
		`CREATEVARIABLE Steel RANGE (0, 80) LABELS (Cold TRIANGLE (0, 10, 30))`,
		`CREATEVARIABLE Pressure RANGE (0, 100) LABELS (Low FALLING (20, 50))`,
		`CREATERULE pressure AS 'IF Steel is Cold THEN Pressure is Low'`,
		`SET Steel = 12`,
	}
	for _, stmt := range stmts {
		if _, err := client.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}

	tsr.close()

	// Start 'er back up again and see if our definitions are still there.
	tsr2, client2, err := NewTestServer(testServerArgs{dataFilePath: tsr.dataFilePath})
	if err != nil {
		t.Fatalf("error restarting: %v", err)
	}
	defer tsr2.close()

	res, err := client2.Query("INFER pressure")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Inferences) != 1 {
		t.Fatalf("expected 1 inference; got %d", len(res.Inferences))
	}
	// Steel's input survived the restart.
	if res.Inferences[0].FiringStrength != 0.9 {
		t.Fatalf("expected firing strength 0.9; got %v", res.Inferences[0].FiringStrength)
	}
}
